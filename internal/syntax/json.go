package syntax

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

// FprintYAML writes a YAML representation of the AST to w. The document
// has the same shape as the JSON output.
func FprintYAML(w io.Writer, node Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toJSON(node)); err != nil {
		return err
	}
	return enc.Close()
}

// toJSON converts node into maps, slices and scalars. Every node map has
// a "kind" and a "pos"; expression maps also carry their "type".
func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{
			"kind":  n.Kind(),
			"pos":   n.pos.String(),
			"stmts": mapNodes(n.Stmts),
		}

	case *Block:
		return map[string]interface{}{
			"kind":  n.Kind(),
			"pos":   n.pos.String(),
			"stmts": mapNodes(n.Stmts),
		}

	case *FuncDecl:
		return map[string]interface{}{
			"kind":   n.Kind(),
			"pos":    n.pos.String(),
			"result": n.Result.String(),
			"name":   n.Name.Name,
			"params": mapNodes(n.Params),
			"body":   toJSON(n.Body),
		}

	case *Param:
		return map[string]interface{}{
			"kind": n.Kind(),
			"pos":  n.pos.String(),
			"type": n.Type.String(),
			"name": n.Name.Name,
		}

	case *DeclareStmt:
		m := map[string]interface{}{
			"kind":  n.Kind(),
			"pos":   n.pos.String(),
			"type":  n.Type.String(),
			"names": mapNodes(n.Names),
		}
		if n.Value != nil {
			m["value"] = toJSON(n.Value)
		}
		return m

	case *AssignStmt:
		return map[string]interface{}{
			"kind":   n.Kind(),
			"pos":    n.pos.String(),
			"target": toJSON(n.Target),
			"value":  toJSON(n.Value),
		}

	case *CallStmt:
		return map[string]interface{}{
			"kind": n.Kind(),
			"pos":  n.pos.String(),
			"call": toJSON(n.Call),
		}

	case *ReturnStmt:
		return map[string]interface{}{
			"kind":    n.Kind(),
			"pos":     n.pos.String(),
			"results": mapNodes(n.Results),
		}

	case *IfStmt:
		m := map[string]interface{}{
			"kind": n.Kind(),
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *WhileStmt:
		return map[string]interface{}{
			"kind": n.Kind(),
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *ForStmt:
		m := map[string]interface{}{
			"kind": n.Kind(),
			"pos":  n.pos.String(),
			"body": toJSON(n.Body),
		}
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}
		if n.Cond != nil {
			m["cond"] = toJSON(n.Cond)
		}
		if n.Post != nil {
			m["post"] = toJSON(n.Post)
		}
		return m

	case *BinaryExpr:
		return map[string]interface{}{
			"kind": n.Kind(),
			"pos":  n.pos.String(),
			"type": n.typ.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *UnaryExpr:
		return map[string]interface{}{
			"kind": n.Kind(),
			"pos":  n.pos.String(),
			"type": n.typ.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}

	case *CallExpr:
		return map[string]interface{}{
			"kind": n.Kind(),
			"pos":  n.pos.String(),
			"type": n.typ.String(),
			"func": n.Func.Name,
			"args": mapNodes(n.Args),
		}

	case *Ident:
		return map[string]interface{}{
			"kind": n.Kind(),
			"pos":  n.pos.String(),
			"type": n.typ.String(),
			"name": n.Name,
		}

	case *FuncName:
		return map[string]interface{}{
			"kind": n.Kind(),
			"pos":  n.pos.String(),
			"name": n.Name,
		}

	case *IntLit:
		return literalJSON(n, n.Value)

	case *FloatLit:
		return literalJSON(n, n.Value)

	case *StringLit:
		return literalJSON(n, n.Value)

	case *BoolLit:
		return literalJSON(n, n.Value)

	default:
		return map[string]interface{}{
			"kind": "Unknown",
		}
	}
}

func literalJSON(x Expr, value interface{}) interface{} {
	return map[string]interface{}{
		"kind":  x.Kind(),
		"pos":   x.Pos().String(),
		"type":  x.Type().String(),
		"value": value,
	}
}

// mapNodes converts each node of s with toJSON.
func mapNodes[T Node](s []T) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = toJSON(v)
	}
	return result
}

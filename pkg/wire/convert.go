package wire

import (
	"github.com/shapestone/shape-core/pkg/ast"
)

var zeroPos = ast.Position{}

// RequestToNode converts a parsed request to an AST ObjectNode. Span text
// is copied into the nodes.
func RequestToNode(req *Request) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":           ast.NewLiteralNode("request", zeroPos),
		"rawRequestLine": ast.NewLiteralNode(req.RawRequestLine.String(), zeroPos),
		"method":         ast.NewLiteralNode(req.RequestLine.Method.String(), zeroPos),
		"target":         ast.NewLiteralNode(req.RequestLine.URI.String(), zeroPos),
		"version":        ast.NewLiteralNode(req.RequestLine.Version.String(), zeroPos),
		"uri":            uriToNode(req.URI),
		"headers":        headersToNode(req.Headers),
		"terminated":     ast.NewLiteralNode(req.Headers.Terminated, zeroPos),
	}
	return ast.NewObjectNode(props, zeroPos)
}

// ResponseToNode converts a parsed response to an AST ObjectNode.
func ResponseToNode(resp *Response) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":            ast.NewLiteralNode("response", zeroPos),
		"rawResponseLine": ast.NewLiteralNode(resp.RawResponseLine.String(), zeroPos),
		"version":         ast.NewLiteralNode(resp.ResponseLine.Version.String(), zeroPos),
		"status":          ast.NewLiteralNode(resp.ResponseLine.Status.String(), zeroPos),
		"message":         ast.NewLiteralNode(resp.ResponseLine.Message.String(), zeroPos),
		"headers":         headersToNode(resp.Headers),
		"terminated":      ast.NewLiteralNode(resp.Headers.Terminated, zeroPos),
	}
	return ast.NewObjectNode(props, zeroPos)
}

func uriToNode(u URI) ast.SchemaNode {
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"scheme":    ast.NewLiteralNode(u.Scheme.String(), zeroPos),
		"authority": ast.NewLiteralNode(u.Authority.String(), zeroPos),
		"path":      ast.NewLiteralNode(u.Path.String(), zeroPos),
		"query":     ast.NewLiteralNode(u.Query.String(), zeroPos),
		"fragment":  ast.NewLiteralNode(u.Fragment.String(), zeroPos),
	}, zeroPos)
}

func headersToNode(h Headers) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(h.Entries))
	for i, e := range h.Entries {
		values := make([]ast.SchemaNode, len(e.Values))
		for j, v := range e.Values {
			values[j] = ast.NewLiteralNode(v.String(), zeroPos)
		}
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":    ast.NewLiteralNode(e.Key.String(), zeroPos),
			"values": ast.NewArrayDataNode(values, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeToInterface converts an AST node to native Go types.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToInterface(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToInterface(v)
		}
		return m
	default:
		return nil
	}
}

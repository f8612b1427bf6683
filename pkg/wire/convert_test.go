package wire

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func TestParse_Request(t *testing.T) {
	node, err := Parse("GET /api?x=1 HTTP/1.1\r\nHost: example.com\r\n\r\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("node type = %T, want *ast.ObjectNode", node)
	}
	props := obj.Properties()

	typeLit, ok := props["type"].(*ast.LiteralNode)
	if !ok || typeLit.Value() != "request" {
		t.Errorf("type = %v, want request", props["type"])
	}
	methodLit, ok := props["method"].(*ast.LiteralNode)
	if !ok || methodLit.Value() != "GET" {
		t.Errorf("method = %v, want GET", props["method"])
	}

	uriObj, ok := props["uri"].(*ast.ObjectNode)
	if !ok {
		t.Fatalf("uri type = %T, want *ast.ObjectNode", props["uri"])
	}
	pathLit, ok := uriObj.Properties()["path"].(*ast.LiteralNode)
	if !ok || pathLit.Value() != "/api" {
		t.Errorf("uri.path = %v, want /api", uriObj.Properties()["path"])
	}

	headersArr, ok := props["headers"].(*ast.ArrayDataNode)
	if !ok {
		t.Fatalf("headers type = %T, want *ast.ArrayDataNode", props["headers"])
	}
	if len(headersArr.Elements()) != 1 {
		t.Errorf("headers count = %d, want 1", len(headersArr.Elements()))
	}
}

func TestParse_Response(t *testing.T) {
	node, err := Parse("HTTP/1.1 404 Not Found\r\nServer: s\r\n\r\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("node type = %T, want *ast.ObjectNode", node)
	}
	props := obj.Properties()

	typeLit, ok := props["type"].(*ast.LiteralNode)
	if !ok || typeLit.Value() != "response" {
		t.Errorf("type = %v, want response", props["type"])
	}
	statusLit, ok := props["status"].(*ast.LiteralNode)
	if !ok || statusLit.Value() != "404" {
		t.Errorf("status = %v, want 404", props["status"])
	}
	msgLit, ok := props["message"].(*ast.LiteralNode)
	if !ok || msgLit.Value() != "Not Found" {
		t.Errorf("message = %v, want Not Found", props["message"])
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestNodeToInterface(t *testing.T) {
	node, err := Parse("GET / HTTP/1.1\r\nHost: h\r\n a\r\n\r\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	v := NodeToInterface(node)
	m, ok := v.(map[string]interface{})
	if !ok {
		t.Fatalf("value type = %T, want map", v)
	}
	if m["method"] != "GET" {
		t.Errorf("method = %v, want GET", m["method"])
	}
	if m["terminated"] != true {
		t.Errorf("terminated = %v, want true", m["terminated"])
	}

	headers, ok := m["headers"].([]interface{})
	if !ok || len(headers) != 1 {
		t.Fatalf("headers = %v, want one entry", m["headers"])
	}
	entry, ok := headers[0].(map[string]interface{})
	if !ok || entry["key"] != "Host" {
		t.Errorf("headers[0] = %v, want key Host", headers[0])
	}
	values, ok := entry["values"].([]interface{})
	if !ok || len(values) != 2 || values[0] != "h" || values[1] != "a" {
		t.Errorf("values = %v, want [h a]", entry["values"])
	}
}

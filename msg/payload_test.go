package msg

import "testing"

func TestPayload_Clone(t *testing.T) {
	p := Payload{
		"line":   10,
		"cursor": map[string]any{"row": 1, "col": 2},
		"marks":  []any{"a", "b"},
	}

	c := p.Clone()

	if !p.Equal(c) {
		t.Fatal("clone should be deeply equal to original")
	}

	// Mutating the clone must not affect the original.
	c["cursor"].(map[string]any)["row"] = 99
	if p["cursor"].(map[string]any)["row"] != 1 {
		t.Error("mutating clone leaked into original")
	}
}

func TestPayload_Clone_Nil(t *testing.T) {
	var p Payload
	if c := p.Clone(); c != nil {
		t.Errorf("expected nil clone, got %v", c)
	}
}

func TestPayload_Equal_Empty(t *testing.T) {
	var a Payload
	b := Payload{}
	if !a.Equal(b) {
		t.Error("nil and empty payloads should be equal")
	}
}

func TestGet(t *testing.T) {
	p := Payload{"cursor": map[string]any{"line": 42}}

	v, ok := Get(p, "cursor.line")
	if !ok {
		t.Fatal("expected cursor.line to resolve")
	}
	if f, ok := v.(float64); !ok || f != 42 {
		t.Errorf("expected 42, got %v", v)
	}

	if _, ok := Get(p, "cursor.column"); ok {
		t.Error("expected cursor.column to be absent")
	}
}

func TestGetString(t *testing.T) {
	p := Payload{"file": map[string]any{"name": "main.go"}}
	if got := GetString(p, "file.name"); got != "main.go" {
		t.Errorf("expected main.go, got %q", got)
	}
	if got := GetString(p, "file.missing"); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSet(t *testing.T) {
	p := Payload{"a": "x"}

	out, err := Set(p, "b.c", 7)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, ok := Get(out, "b.c")
	if !ok || v.(float64) != 7 {
		t.Errorf("expected b.c = 7, got %v", v)
	}

	// Original untouched.
	if _, ok := p["b"]; ok {
		t.Error("Set mutated its input")
	}
}

func TestDelete(t *testing.T) {
	p := Payload{"a": "x", "b": "y"}

	out, err := Delete(p, "a")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := out["a"]; ok {
		t.Error("expected a to be deleted")
	}
	if out["b"] != "y" {
		t.Error("expected b to survive")
	}
}

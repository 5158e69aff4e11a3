package bubble

import (
	"errors"
	"testing"
)

func TestResolvePassSpec_NilComputed(t *testing.T) {
	var fn func() any
	dir, ok, err := resolvePassSpec(fn, "ping", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || dir != nil {
		t.Error("nil computed spec should yield no directive")
	}
}

func TestResolvePassSpec_ComputedKeyed(t *testing.T) {
	spec := func() any {
		return PassTable{"pi*": Rename("pong")}
	}
	dir, ok, err := resolvePassSpec(spec, "ping", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a directive")
	}
	if r, isRename := dir.(Rename); !isRename || string(r) != "pong" {
		t.Errorf("expected Rename(pong), got %#v", dir)
	}
}

func TestResolvePassSpec_NilDirectiveEntry(t *testing.T) {
	_, _, err := resolvePassSpec(PassTable{"ping": nil}, "ping", nil)
	if !errors.Is(err, ErrInvalidPassSpec) {
		t.Errorf("expected ErrInvalidPassSpec for nil directive, got %v", err)
	}
}

func TestResolvePassSpec_Specificity(t *testing.T) {
	spec := PassTable{
		"*":    Forward,
		"pi*":  Rename("renamed"),
		"ping": Rename("exact"),
	}
	dir, ok, err := resolvePassSpec(spec, "ping", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a directive")
	}
	if r, isRename := dir.(Rename); !isRename || string(r) != "exact" {
		t.Errorf("expected the most specific entry, got %#v", dir)
	}
}

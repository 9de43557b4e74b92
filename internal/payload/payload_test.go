package payload

import "testing"

func TestParse(t *testing.T) {
	n, err := Parse([]byte(`{"profile": {"username": "creator"}}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s, ok := n.String("profile.username"); !ok || s != "creator" {
		t.Errorf("expected profile.username = creator, got %q (ok=%v)", s, ok)
	}
}

func TestParse_Null(t *testing.T) {
	n, err := Parse([]byte(`null`))
	if err != nil {
		t.Fatalf("Parse of null failed: %v", err)
	}
	if n == nil {
		t.Error("expected non-nil node for JSON null")
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := Parse([]byte(`[1, 2, 3]`)); err == nil {
		t.Error("expected error for non-object payload")
	}
}

func TestNode_DottedPaths(t *testing.T) {
	n, _ := Parse([]byte(`{
		"a": {"b": {"c": 42}},
		"s": "hello",
		"nil_field": null
	}`))

	if f, ok := n.Float("a.b.c"); !ok || f != 42 {
		t.Errorf("expected a.b.c = 42, got %v (ok=%v)", f, ok)
	}
	if _, ok := n.Float("a.b.missing"); ok {
		t.Error("expected miss for absent leaf")
	}
	if _, ok := n.Float("a.missing.c"); ok {
		t.Error("expected miss for absent intermediate")
	}
	if _, ok := n.Float("s.c"); ok {
		t.Error("expected miss when walking through a scalar")
	}
	if n.Has("nil_field") {
		t.Error("JSON null should read as absent")
	}
}

func TestNode_NilSafety(t *testing.T) {
	var n Node

	if _, ok := n.String("a"); ok {
		t.Error("nil node String should miss")
	}
	if _, ok := n.FirstFloat("a", "b"); ok {
		t.Error("nil node FirstFloat should miss")
	}
	if m := n.Map("a"); m != nil {
		t.Error("nil node Map should return nil")
	}
	if s := n.Slice("a"); s != nil {
		t.Error("nil node Slice should return nil")
	}
}

func TestNode_FloatCoercion(t *testing.T) {
	n, _ := Parse([]byte(`{
		"num": 3.5,
		"int": 7,
		"str": "42.5",
		"strpad": " 12 ",
		"bad": "abc",
		"bool": true
	}`))

	tests := []struct {
		path   string
		want   float64
		wantOK bool
	}{
		{"num", 3.5, true},
		{"int", 7, true},
		{"str", 42.5, true},
		{"strpad", 12, true},
		{"bad", 0, false},
		{"bool", 0, false},
	}

	for _, tt := range tests {
		got, ok := n.Float(tt.path)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Float(%q) = (%v, %v), want (%v, %v)", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNode_Int_Rounds(t *testing.T) {
	n, _ := Parse([]byte(`{"x": 41.6}`))
	if i, ok := n.Int("x"); !ok || i != 42 {
		t.Errorf("Int = %d (ok=%v), want 42", i, ok)
	}
}

func TestNode_String_EmptyIsMiss(t *testing.T) {
	n, _ := Parse([]byte(`{"empty": "", "blank": "  ", "real": " x "}`))

	if _, ok := n.String("empty"); ok {
		t.Error("empty string should read as absent")
	}
	if _, ok := n.String("blank"); ok {
		t.Error("whitespace string should read as absent")
	}
	if s, ok := n.String("real"); !ok || s != "x" {
		t.Errorf("expected trimmed \"x\", got %q (ok=%v)", s, ok)
	}
}

func TestNode_FirstChain(t *testing.T) {
	n, _ := Parse([]byte(`{
		"second": 2,
		"third": 3
	}`))

	if f, ok := n.FirstFloat("first", "second", "third"); !ok || f != 2 {
		t.Errorf("FirstFloat = %v (ok=%v), want 2", f, ok)
	}
	if _, ok := n.FirstFloat("missing1", "missing2"); ok {
		t.Error("expected miss when no candidate resolves")
	}
}

func TestNode_FirstSlice_SkipsEmpty(t *testing.T) {
	n, _ := Parse([]byte(`{"empty": [], "full": [1, 2]}`))

	s := n.FirstSlice("empty", "full")
	if len(s) != 2 {
		t.Errorf("expected the non-empty candidate, got %v", s)
	}
}

func TestNode_Strings(t *testing.T) {
	n, _ := Parse([]byte(`{"tags": ["a", 1, " b ", ""]}`))

	got := n.Strings("tags")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Strings = %v, want [a b]", got)
	}
}

func TestAsNode(t *testing.T) {
	if AsNode(map[string]any{"k": 1}) == nil {
		t.Error("map should convert")
	}
	if AsNode("scalar") != nil {
		t.Error("scalar should convert to nil")
	}
	if AsNode(nil) != nil {
		t.Error("nil should convert to nil")
	}
}

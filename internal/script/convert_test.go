package script

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	lua "github.com/yuin/gopher-lua"
)

func TestToGo(t *testing.T) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	lua.OpenBase(L)

	if err := L.DoString(`
		value = {
			indent_width = 4,
			ratio = 1.5,
			expand_quotes = true,
			pairs = {"()", {open = "<", close = ">"}},
		}
		value.self = value
	`); err != nil {
		t.Fatal(err)
	}

	got := toGo(L.GetGlobal("value"))
	want := map[string]any{
		"indent_width":  int64(4),
		"ratio":         1.5,
		"expand_quotes": true,
		"pairs": []any{
			"()",
			map[string]any{"open": "<", "close": ">"},
		},
		"self": nil,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected conversion (-want +got):\n%s", diff)
	}
}

func TestToGoScalars(t *testing.T) {
	if toGo(lua.LNil) != nil {
		t.Error("expected nil for LNil")
	}
	if toGo(lua.LString("x")) != "x" {
		t.Error("expected string")
	}
	if got := toGo(lua.LNumber(-2)); got != int64(-2) {
		t.Errorf("expected int64(-2), got %#v", got)
	}
}

package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/upcast/msg"
)

// toGo converts a Lua value to a Go value. Tables convert to []any when
// they are contiguous 1-based arrays and to map[string]any otherwise;
// functions and userdata convert to nil.
func (e *Engine) toGo(lv lua.LValue) any {
	return e.toGoVisited(lv, make(map[*lua.LTable]bool))
}

func (e *Engine) toGoVisited(lv lua.LValue, visited map[*lua.LTable]bool) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if visited[v] {
			return nil // break circular references
		}
		visited[v] = true
		return e.tableToGo(v, visited)
	default:
		return nil
	}
}

func (e *Engine) tableToGo(t *lua.LTable, visited map[*lua.LTable]bool) any {
	// Contiguous 1-based integer keys convert to a slice.
	isArray := true
	maxN, count := 0, 0
	t.ForEach(func(k, _ lua.LValue) {
		count++
		if kn, ok := k.(lua.LNumber); ok {
			n := int(kn)
			if float64(n) == float64(kn) && n > 0 {
				if n > maxN {
					maxN = n
				}
				return
			}
		}
		isArray = false
	})
	if isArray && maxN > 0 && count == maxN {
		arr := make([]any, maxN)
		for i := 1; i <= maxN; i++ {
			arr[i-1] = e.toGoVisited(t.RawGetInt(i), visited)
		}
		return arr
	}

	m := make(map[string]any, count)
	t.ForEach(func(k, v lua.LValue) {
		var key string
		switch kv := k.(type) {
		case lua.LString:
			key = string(kv)
		case lua.LNumber:
			key = fmt.Sprintf("%v", float64(kv))
		default:
			key = k.String()
		}
		m[key] = e.toGoVisited(v, visited)
	})
	return m
}

// toGoPayload converts a Lua table to a payload. Non-table values yield
// an empty payload.
func (e *Engine) toGoPayload(lv lua.LValue) msg.Payload {
	t, ok := lv.(*lua.LTable)
	if !ok {
		return msg.New()
	}
	m, ok := e.tableToGo(t, make(map[*lua.LTable]bool)).(map[string]any)
	if !ok {
		return msg.New()
	}
	return msg.Payload(m)
}

// toLua converts a Go value to a Lua value.
func (e *Engine) toLua(v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case []byte:
		return lua.LString(val)
	case msg.Payload:
		return e.mapToLua(map[string]any(val))
	case map[string]any:
		return e.mapToLua(val)
	case []any:
		t := e.L.NewTable()
		for i, item := range val {
			t.RawSetInt(i+1, e.toLua(item))
		}
		return t
	case []string:
		t := e.L.NewTable()
		for i, item := range val {
			t.RawSetInt(i+1, lua.LString(item))
		}
		return t
	default:
		return lua.LString(fmt.Sprintf("%v", val))
	}
}

func (e *Engine) mapToLua(m map[string]any) *lua.LTable {
	t := e.L.NewTable()
	for k, v := range m {
		t.RawSetString(k, e.toLua(v))
	}
	return t
}

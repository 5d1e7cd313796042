// Package luabind exposes a bindings.Registry to Lua scripts.
//
// Open installs two globals into a Lua state:
//
//	handle = bind(keys, fn)
//	handle = bind(keys, opts, fn)
//	ok = unbind(handle)
//
// where opts is a table with optional fields "event" ("down" or "up"),
// "strict" (boolean), "action" and "description" (strings). The handle is
// the binding's identifier string.
//
// Handlers call back into the Lua state, so the matcher that fires them
// must run on the goroutine that owns the state. luabind never closes the
// state; the caller retains ownership.
package luabind

import (
	"fmt"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keychord/bindings"
	"github.com/dshills/keychord/combo"
)

// Open installs the bind/unbind globals targeting the given registry.
func Open(L *lua.LState, reg *bindings.Registry) {
	L.SetGlobal("bind", L.NewFunction(bindFunc(reg)))
	L.SetGlobal("unbind", L.NewFunction(unbindFunc(reg)))
}

func bindFunc(reg *bindings.Registry) lua.LGFunction {
	return func(L *lua.LState) int {
		keys := L.CheckString(1)

		b := bindings.Binding{Keys: keys}
		fnIndex := 2
		if tbl, ok := L.Get(2).(*lua.LTable); ok {
			if err := readOpts(tbl, &b); err != nil {
				L.RaiseError("bind(%q): %s", keys, err.Error())
				return 0
			}
			fnIndex = 3
		}
		fn := L.CheckFunction(fnIndex)

		handler := func() error {
			return L.CallByParam(lua.P{
				Fn:      fn,
				NRet:    0,
				Protect: true,
			})
		}

		id, err := reg.Bind(b, handler)
		if err != nil {
			L.RaiseError("bind(%q): %s", keys, err.Error())
			return 0
		}

		L.Push(lua.LString(id.String()))
		return 1
	}
}

func unbindFunc(reg *bindings.Registry) lua.LGFunction {
	return func(L *lua.LState) int {
		handle := L.CheckString(1)

		id, err := uuid.Parse(handle)
		if err != nil {
			L.Push(lua.LFalse)
			return 1
		}

		L.Push(lua.LBool(reg.Unbind(id)))
		return 1
	}
}

// readOpts fills binding fields from the options table.
func readOpts(tbl *lua.LTable, b *bindings.Binding) error {
	if v := tbl.RawGetString("event"); v != lua.LNil {
		s, ok := v.(lua.LString)
		if !ok {
			return fmt.Errorf("event must be a string")
		}
		switch string(s) {
		case "down":
			b.EventType = combo.EventDown
		case "up":
			b.EventType = combo.EventUp
		default:
			return fmt.Errorf("unknown event type %q", string(s))
		}
	}

	if v := tbl.RawGetString("strict"); v != lua.LNil {
		bv, ok := v.(lua.LBool)
		if !ok {
			return fmt.Errorf("strict must be a boolean")
		}
		b.Strict = bool(bv)
	}

	if v := tbl.RawGetString("action"); v != lua.LNil {
		s, ok := v.(lua.LString)
		if !ok {
			return fmt.Errorf("action must be a string")
		}
		b.Action = string(s)
	}

	if v := tbl.RawGetString("description"); v != lua.LNil {
		s, ok := v.(lua.LString)
		if !ok {
			return fmt.Errorf("description must be a string")
		}
		b.Description = string(s)
	}

	return nil
}

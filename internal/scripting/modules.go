package scripting

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// zoneSpan is the number of ids one zone owns.
const zoneSpan = 100

// registerModules installs the convert.* helpers:
//
//	convert.zone_of(id)      -> the zone number owning a record id
//	convert.log(msg)         -> an info line in the run log
//	convert.contains(s, sub) -> plain substring test, case-insensitive
func registerModules(L *lua.LState, logger *zap.Logger) {
	mod := L.NewTable()
	L.SetFuncs(mod, map[string]lua.LGFunction{
		"zone_of": func(L *lua.LState) int {
			L.Push(lua.LNumber(L.CheckInt(1) / zoneSpan))
			return 1
		},
		"log": func(L *lua.LState) int {
			logger.Info("filter script", zap.String("msg", L.CheckString(1)))
			return 0
		},
		"contains": func(L *lua.LState) int {
			L.Push(lua.LBool(strings.Contains(strings.ToLower(L.CheckString(1)), strings.ToLower(L.CheckString(2)))))
			return 1
		},
	})
	L.SetGlobal("convert", mod)
}

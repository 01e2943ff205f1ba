package scripting

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/mudconvert/internal/importer"
)

// FilterHook is the global function every filter script set must define:
//
//	function keep_record(kind, id, name) return true end
//
// kind is "room", "mobile", "object", "shop" or "trigger".
const FilterHook = "keep_record"

var _ importer.Filter = (*Filter)(nil)

// Filter is an importer.Filter backed by one sandboxed VM.
//
// Filter is safe for concurrent use; calls are serialized because an LState
// is single-threaded.
type Filter struct {
	mu     sync.Mutex
	L      *lua.LState
	hook   lua.LValue
	limit  int
	digest string
	logger *zap.Logger
}

// LoadFilter creates a sandboxed VM, registers the convert.* helpers, then
// executes every *.lua file in scriptDir in lexicographic order.
//
// Precondition: scriptDir must be a readable directory; logger must be non-nil.
// Postcondition: Returns a Filter, or an error if a script fails to load or
// no script defines keep_record.
func LoadFilter(scriptDir string, instLimit int, logger *zap.Logger) (*Filter, error) {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return nil, fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}
	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	L := NewSandboxedState()
	registerModules(L, logger)
	h := sha256.New()
	for _, path := range luaFiles {
		src, err := os.ReadFile(path)
		if err != nil {
			L.Close()
			return nil, fmt.Errorf("scripting: reading %q: %w", path, err)
		}
		fmt.Fprintf(h, "%s\x00%d\x00", filepath.Base(path), len(src))
		h.Write(src)

		release := Limit(L, instLimit)
		err = run(L, path, src)
		release()
		if err != nil {
			L.Close()
			return nil, fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	hook := L.GetGlobal(FilterHook)
	if hook.Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("scripting: no script in %q defines function %s", scriptDir, FilterHook)
	}
	logger.Info("record filter loaded",
		zap.String("dir", scriptDir),
		zap.Int("scripts", len(luaFiles)),
	)
	return &Filter{L: L, hook: hook, limit: instLimit, digest: hex.EncodeToString(h.Sum(nil)), logger: logger}, nil
}

func run(L *lua.LState, name string, src []byte) error {
	fn, err := L.Load(bytes.NewReader(src), name)
	if err != nil {
		return err
	}
	L.Push(fn)
	return L.PCall(0, lua.MultRet, nil)
}

// Digest identifies the loaded scripts: the hex SHA-256 of every file name
// and its contents, in load order. Editing, adding, removing or renaming a
// script changes it.
func (f *Filter) Digest() string { return f.digest }

// Keep calls keep_record(kind, id, name).
//
// Postcondition: a boolean result is returned as-is; nil (no return value)
// keeps the record. Any other result, a Lua runtime error or an exhausted
// instruction budget is returned as an error.
func (f *Filter) Keep(kind string, id int, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	release := Limit(f.L, f.limit)
	err := f.L.CallByParam(lua.P{
		Fn:      f.hook,
		NRet:    1,
		Protect: true,
	}, lua.LString(kind), lua.LNumber(id), lua.LString(name))
	release()
	if err != nil {
		f.logger.Warn("scripting: Lua runtime error",
			zap.String("hook", FilterHook),
			zap.String("kind", kind),
			zap.Int("id", id),
			zap.Error(err),
		)
		return false, fmt.Errorf("%s(%s, %d): %w", FilterHook, kind, id, err)
	}

	ret := f.L.Get(-1)
	f.L.Pop(1)
	switch v := ret.(type) {
	case lua.LBool:
		return bool(v), nil
	case *lua.LNilType:
		return true, nil
	default:
		return false, fmt.Errorf("%s(%s, %d) returned %s, want boolean", FilterHook, kind, id, ret.Type())
	}
}

// Close releases the VM.
func (f *Filter) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.L.Close()
}

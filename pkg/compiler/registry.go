package compiler

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed casiolib.toml
var casiolibTOML string

type manifest struct {
	Package string                    `toml:"package"`
	Library string                    `toml:"library"`
	Modules map[string]manifestModule `toml:"modules"`
}

type manifestModule struct {
	Functions []string `toml:"functions"`
}

// Registry is the static description of the calculator library namespace:
// the reserved package, the library below it, and one flat level of modules
// each holding a set of functions.
type Registry struct {
	pkg       ModulePath
	lib       ModulePath
	functions map[string][]string
	modules   []ModulePath
}

// NewRegistry builds a registry from TOML manifest text. It panics on a
// malformed manifest since the only callers feed it embedded or test data.
func NewRegistry(text string) *Registry {
	var m manifest
	if err := toml.Unmarshal([]byte(text), &m); err != nil {
		panic(fmt.Sprintf("compiler: bad library manifest: %v", err))
	}
	if m.Package == "" || m.Library == "" {
		panic("compiler: library manifest needs package and library names")
	}

	reg := &Registry{
		pkg:       ModulePath{m.Package},
		lib:       ModulePath{m.Package, m.Library},
		functions: make(map[string][]string, len(m.Modules)),
	}
	reg.modules = append(reg.modules, reg.pkg, reg.lib)
	for name, mod := range m.Modules {
		if strings.Contains(name, ".") {
			panic(fmt.Sprintf("compiler: only 1-level deep packages implemented, got module %q", name))
		}
		funcs := append([]string(nil), mod.Functions...)
		sort.Strings(funcs)
		reg.functions[name] = funcs
		reg.modules = append(reg.modules, reg.lib.Child(name))
	}
	sort.Slice(reg.modules, func(i, j int) bool {
		return reg.modules[i].String() < reg.modules[j].String()
	})
	return reg
}

// DefaultRegistry returns the registry for the embedded manifest, built on
// first use.
var DefaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(casiolibTOML)
})

// Package returns the reserved import namespace, e.g. gocasio.
func (r *Registry) Package() ModulePath {
	return r.pkg
}

// Library returns the library path under the package, e.g. gocasio.casio.
func (r *Registry) Library() ModulePath {
	return r.lib
}

// IsModule reports whether path names the package, the library, or one of
// the library's modules.
func (r *Registry) IsModule(path ModulePath) bool {
	for _, mod := range r.modules {
		if mod.Equal(path) {
			return true
		}
	}
	return false
}

// Function resolves path as a library function reference, returning the
// containing module and function name.
func (r *Registry) Function(path ModulePath) (mod ModulePath, name string, ok bool) {
	if len(path) != len(r.lib)+2 {
		return nil, "", false
	}
	if !path.Prefix(len(r.lib)).Equal(r.lib) {
		return nil, "", false
	}
	modName := path[len(r.lib)]
	fnName := path.Last()
	for _, fn := range r.functions[modName] {
		if fn == fnName {
			return path.Parent(), fnName, true
		}
	}
	return nil, "", false
}

// FunctionsOf returns the sorted function names of a module, nil when path
// is not a function-bearing module.
func (r *Registry) FunctionsOf(path ModulePath) []string {
	if !r.lib.IsDirectParentOf(path) {
		return nil
	}
	return r.functions[path.Last()]
}

// DirectChildren returns the sorted final segments of the modules exactly
// one level below parent.
func (r *Registry) DirectChildren(parent ModulePath) []string {
	var names []string
	for _, mod := range r.modules {
		if parent.IsDirectParentOf(mod) {
			names = append(names, mod.Last())
		}
	}
	return names
}

// ModuleNames returns every known module as a sorted dotted name.
func (r *Registry) ModuleNames() []string {
	names := make([]string, len(r.modules))
	for i, mod := range r.modules {
		names[i] = mod.String()
	}
	return names
}

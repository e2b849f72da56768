package compiler

import (
	"reflect"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	t.Run("Namespace", func(t *testing.T) {
		if reg.Package().String() != "gocasio" {
			t.Errorf("package: got %s", reg.Package())
		}
		if reg.Library().String() != "gocasio.casio" {
			t.Errorf("library: got %s", reg.Library())
		}
	})

	t.Run("Modules", func(t *testing.T) {
		want := []string{
			"gocasio",
			"gocasio.casio",
			"gocasio.casio.input",
			"gocasio.casio.math",
		}
		if got := reg.ModuleNames(); !reflect.DeepEqual(got, want) {
			t.Errorf("module names: got %v, want %v", got, want)
		}
		for _, name := range want {
			if !reg.IsModule(NewModulePath(name)) {
				t.Errorf("IsModule(%s) = false", name)
			}
		}
		if reg.IsModule(NewModulePath("gocasio.casio.nope")) {
			t.Errorf("IsModule accepted an unknown module")
		}
	})

	t.Run("Functions", func(t *testing.T) {
		mod, name, ok := reg.Function(NewModulePath("gocasio.casio.input.getkey"))
		if !ok {
			t.Fatalf("getkey not resolved")
		}
		if mod.String() != "gocasio.casio.input" || name != "getkey" {
			t.Errorf("resolved to %s / %s", mod, name)
		}
		if _, _, ok := reg.Function(NewModulePath("gocasio.casio.input.bogus")); ok {
			t.Errorf("resolved an unknown function")
		}
		if _, _, ok := reg.Function(NewModulePath("gocasio.casio.input")); ok {
			t.Errorf("resolved a module as a function")
		}
	})

	t.Run("FunctionsOf", func(t *testing.T) {
		want := []string{"cos", "floor", "ln", "log", "sin", "sqrt", "tan"}
		if got := reg.FunctionsOf(NewModulePath("gocasio.casio.math")); !reflect.DeepEqual(got, want) {
			t.Errorf("math functions: got %v, want %v", got, want)
		}
		if got := reg.FunctionsOf(NewModulePath("gocasio.casio")); got != nil {
			t.Errorf("library has no functions, got %v", got)
		}
	})

	t.Run("DirectChildren", func(t *testing.T) {
		if got := reg.DirectChildren(NewModulePath("gocasio")); !reflect.DeepEqual(got, []string{"casio"}) {
			t.Errorf("package children: got %v", got)
		}
		want := []string{"input", "math"}
		if got := reg.DirectChildren(NewModulePath("gocasio.casio")); !reflect.DeepEqual(got, want) {
			t.Errorf("library children: got %v, want %v", got, want)
		}
		if got := reg.DirectChildren(NewModulePath("gocasio.casio.input")); got != nil {
			t.Errorf("leaf module children: got %v", got)
		}
	})
}

func TestNewRegistryRejectsNestedModules(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for a dotted module name")
		}
	}()
	NewRegistry(`
package = "gocasio"
library = "casio"

[modules."input.extra"]
functions = ["f"]
`)
}

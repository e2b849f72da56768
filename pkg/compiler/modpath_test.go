package compiler

import "testing"

func TestModulePath(t *testing.T) {
	p := NewModulePath("gocasio.casio.input")

	if p.String() != "gocasio.casio.input" {
		t.Errorf("String: got %s", p)
	}
	if p.First() != "gocasio" || p.Last() != "input" {
		t.Errorf("First/Last: got %s / %s", p.First(), p.Last())
	}
	if !p.Equal(ModulePath{"gocasio", "casio", "input"}) {
		t.Errorf("Equal failed on identical paths")
	}
	if p.Equal(p.Parent()) {
		t.Errorf("Equal matched paths of different lengths")
	}
	if p.Parent().String() != "gocasio.casio" {
		t.Errorf("Parent: got %s", p.Parent())
	}
	if p.Prefix(1).String() != "gocasio" {
		t.Errorf("Prefix: got %s", p.Prefix(1))
	}
	if p.Child("getkey").String() != "gocasio.casio.input.getkey" {
		t.Errorf("Child: got %s", p.Child("getkey"))
	}
	if got := p.Concat(ModulePath{"a", "b"}); got.String() != "gocasio.casio.input.a.b" {
		t.Errorf("Concat: got %s", got)
	}
	if !p.Parent().IsDirectParentOf(p) {
		t.Errorf("IsDirectParentOf failed for the direct parent")
	}
	if p.Prefix(1).IsDirectParentOf(p) {
		t.Errorf("IsDirectParentOf matched a grandparent")
	}
}

func TestModulePathChildrenDoNotShareStorage(t *testing.T) {
	base := NewModulePath("gocasio.casio")
	a := base.Child("input")
	b := base.Child("math")
	if a.Last() != "input" || b.Last() != "math" {
		t.Errorf("children share storage: %s / %s", a, b)
	}
}

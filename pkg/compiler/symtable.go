package compiler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gocasio/pkg/casio"
)

// Symbol is one name binding. Either Ref is set and the name aliases a
// library path, or the symbol owns a storage slot on the calculator.
type Symbol struct {
	Name  string
	Ref   ModulePath
	Value string
	Type  ValueType
	Slot  string
}

// SymbolTable maps source names to calculator storage. There is a single
// flat namespace. The pools hold the unallocated slot tokens as stacks with
// the next slot to hand out at the end, so A pops before B and a freed slot
// is the first one reused.
type SymbolTable struct {
	symbols map[string]*Symbol
	numbers []string
	strings []string
}

func numberSlots() []string {
	slots := make([]string, 0, 28)
	slots = append(slots, casio.Theta, casio.Radius)
	for c := 'Z'; c >= 'A'; c-- {
		slots = append(slots, string(c))
	}
	return slots
}

func stringSlots() []string {
	slots := make([]string, 0, 20)
	for i := 20; i >= 1; i-- {
		slots = append(slots, casio.Str+strconv.Itoa(i))
	}
	return slots
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
		numbers: numberSlots(),
		strings: stringSlots(),
	}
}

// Get looks up a binding by source name.
func (st *SymbolTable) Get(name string) (*Symbol, bool) {
	sym, ok := st.symbols[name]
	return sym, ok
}

// New binds name to a fresh symbol, popping a storage slot for number and
// string values. Any existing binding is overwritten and keeps its old slot
// allocated. ok is false when the pool for t is exhausted.
func (st *SymbolTable) New(name string, t ValueType, value string) (sym *Symbol, ok bool) {
	sym = &Symbol{Name: name, Type: t, Value: value}
	switch t {
	case TypeNumber:
		if len(st.numbers) == 0 {
			return nil, false
		}
		sym.Slot = st.numbers[len(st.numbers)-1]
		st.numbers = st.numbers[:len(st.numbers)-1]
	case TypeString:
		if len(st.strings) == 0 {
			return nil, false
		}
		sym.Slot = st.strings[len(st.strings)-1]
		st.strings = st.strings[:len(st.strings)-1]
	}
	st.symbols[name] = sym
	return sym, true
}

// Free returns a symbol's slot to its pool so the next allocation of that
// type reuses it. The translator never frees; slots live for the whole
// program.
func (st *SymbolTable) Free(sym *Symbol) {
	if sym.Slot == "" {
		return
	}
	switch sym.Type {
	case TypeNumber:
		st.numbers = append(st.numbers, sym.Slot)
	case TypeString:
		st.strings = append(st.strings, sym.Slot)
	}
	sym.Slot = ""
}

// Remaining reports how many unallocated slots the pool for t still holds.
func (st *SymbolTable) Remaining(t ValueType) int {
	switch t {
	case TypeNumber:
		return len(st.numbers)
	case TypeString:
		return len(st.strings)
	}
	return 0
}

// DefineAlias binds name to a library path, overwriting any existing
// binding.
func (st *SymbolTable) DefineAlias(name string, ref ModulePath) *Symbol {
	sym := &Symbol{Name: name, Ref: ref, Type: TypeNull}
	st.symbols[name] = sym
	return sym
}

// LookupReference resolves a dotted source name against the alias bindings.
// It walks increasing prefixes of the name; at the first prefix bound to a
// library path it substitutes that path for the prefix and validates the
// whole reference against the registry. Longer prefixes past the first
// bound one are never tried.
func (st *SymbolTable) LookupReference(dotted string, reg *Registry) ModulePath {
	path := NewModulePath(dotted)
	for i := 1; i <= len(path); i++ {
		sym, ok := st.symbols[path.Prefix(i).String()]
		if !ok || sym.Ref == nil {
			continue
		}
		full := sym.Ref.Concat(path[i:])
		if reg.IsModule(full) {
			return full
		}
		if _, _, ok := reg.Function(full); ok {
			return full
		}
		break
	}
	return nil
}

// String returns a deterministically ordered dump of the table.
func (st *SymbolTable) String() string {
	if len(st.symbols) == 0 {
		return "Symbols: (empty)\n"
	}
	names := make([]string, 0, len(st.symbols))
	for name := range st.symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("Symbols:\n")
	for _, name := range names {
		sym := st.symbols[name]
		if sym.Ref != nil {
			fmt.Fprintf(&sb, "  %-20s  -> %s\n", name, sym.Ref)
		} else {
			fmt.Fprintf(&sb, "  %-20s  %s slot [% x] = [% x]\n", name, sym.Type, sym.Slot, sym.Value)
		}
	}
	return sb.String()
}

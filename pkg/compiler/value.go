package compiler

// ValueType is the calculator-side type of a translated expression.
type ValueType int

const (
	TypeNull ValueType = iota
	TypeNumber
	TypeString
)

var typeNames = [...]string{
	TypeNull:   "null",
	TypeNumber: "number",
	TypeString: "string",
}

func (t ValueType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Caps records what a translated value is allowed to do. Flags only combine
// downward: a compound expression keeps a capability only when every operand
// had it.
type Caps struct {
	// SideEffects marks code that does something on the calculator beyond
	// producing a value, so a bare statement of it is kept.
	SideEffects bool
	// Boolean marks a number known to be 0 or 1.
	Boolean bool
	// PreventExpression forbids the value standing alone as a statement.
	PreventExpression bool
	// PreventAssignment forbids storing the value in a variable.
	PreventAssignment bool
	// PreventArgument forbids passing the value to a call.
	PreventArgument bool
}

func (c Caps) and(other Caps) Caps {
	return Caps{
		SideEffects:       c.SideEffects && other.SideEffects,
		Boolean:           c.Boolean && other.Boolean,
		PreventExpression: c.PreventExpression && other.PreventExpression,
		PreventAssignment: c.PreventAssignment && other.PreventAssignment,
		PreventArgument:   c.PreventArgument && other.PreventArgument,
	}
}

// CodeValue is a translated expression: the emitted bytes plus the type and
// capabilities the surrounding code checks against.
type CodeValue struct {
	Code string
	Type ValueType
	Caps Caps
}

// newValue builds a CodeValue. A null value produces nothing usable, so it
// can never be assigned or passed on.
func newValue(code string, t ValueType, caps Caps) *CodeValue {
	if t == TypeNull {
		caps.PreventAssignment = true
		caps.PreventArgument = true
	}
	return &CodeValue{Code: code, Type: t, Caps: caps}
}

// result is what translating an expression yields: either emitted code or a
// reference into the library namespace.
type result interface {
	resultNode()
}

func (*CodeValue) resultNode() {}
func (ModulePath) resultNode() {}

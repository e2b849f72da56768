package compiler

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a fatal translation failure.
type ErrorKind int

const (
	KindImport ErrorKind = iota
	KindName
	KindAssignment
	KindType
	KindOperation
	KindNotSupported
	KindNotImplemented
	KindAllocation
)

var kindNames = [...]string{
	KindImport:         "import error",
	KindName:           "name error",
	KindAssignment:     "assignment error",
	KindType:           "type error",
	KindOperation:      "operation error",
	KindNotSupported:   "not supported",
	KindNotImplemented: "not implemented",
	KindAllocation:     "allocation error",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "error"
	}
	return kindNames[k]
}

// Error is a fatal translation diagnostic anchored to a source span.
// Translation stops at the first one.
type Error struct {
	Kind     ErrorKind
	File     string
	Line     int    // 1-based
	LineText string // raw source line, no trailing newline
	Col      int    // 0-based; -1 when no span is known
	EndCol   int
	Msg      string
	Help     string
}

// Error renders the framed report: a banner, the file and line, the source
// line with a caret run under the offending span, then the message and any
// help text.
func (e *Error) Error() string {
	var sb strings.Builder
	banner := strings.Repeat("=", 20)
	fmt.Fprintf(&sb, "\n%s CASIO COMPILER %s\n", banner, banner)
	fmt.Fprintf(&sb, "In file %s:\n", e.File)
	fmt.Fprintf(&sb, "Line %d:\n", e.Line)
	sb.WriteString(e.LineText)
	if e.Col >= 0 {
		span := e.EndCol - e.Col
		if span < 0 {
			span = 0
		}
		fmt.Fprintf(&sb, "\n%s^%s", strings.Repeat(" ", e.Col), strings.Repeat("~", span))
	}
	fmt.Fprintf(&sb, "\nError: %s", e.Msg)
	if e.Help != "" {
		fmt.Fprintf(&sb, "\nHelp:\n%s", e.Help)
	}
	return sb.String()
}

// help attaches a help section and returns the error for chaining.
func (e *Error) help(format string, args ...any) *Error {
	e.Help = fmt.Sprintf(format, args...)
	return e
}

// Warning is a non-fatal diagnostic. Compilation carries on and the warning
// is reported alongside the result.
type Warning struct {
	File   string
	Line   int
	Col    int
	EndCol int
	Msg    string
}

func (w *Warning) String() string {
	return fmt.Sprintf("%s:%d: warning: %s", w.File, w.Line, w.Msg)
}

package compiler

import (
	"strings"

	"gocasio/pkg/casio"
	"gocasio/pkg/pyast"
)

// Context is the per-file compilation state: the source and its parsed
// tree, the symbol table, the warnings raised so far and the emitted byte
// lines, one per effective source statement.
type Context struct {
	Filename string
	Source   string
	Root     *pyast.Module
	Symbols  *SymbolTable
	Lines    []string
	Warnings []*Warning

	sourceLines []string
}

func newContext(filename, source string, root *pyast.Module) *Context {
	return &Context{
		Filename:    filename,
		Source:      source,
		Root:        root,
		Symbols:     NewSymbolTable(),
		sourceLines: strings.Split(source, "\n"),
	}
}

// lineText returns the raw source line for a 1-based line number.
func (ctx *Context) lineText(line int) string {
	if line < 1 || line > len(ctx.sourceLines) {
		return "<source unavailable>"
	}
	return strings.TrimRight(ctx.sourceLines[line-1], "\r")
}

// Program joins the emitted lines with the calculator's statement
// separator.
func (ctx *Context) Program() []byte {
	return []byte(strings.Join(ctx.Lines, casio.Carriage))
}

// Export frames the program bytes into a complete file image ready to be
// written to disk or sent to the device.
func (ctx *Context) Export(name, password string) ([]byte, error) {
	return casio.Pack(ctx.Program(), name, password)
}

package compiler

import (
	"os"

	"gocasio/pkg/pyast"
)

// Config adjusts one compilation.
type Config struct {
	// SuppressNoEffect drops the warning for statements that translate to
	// nothing.
	SuppressNoEffect bool

	// Registry overrides the library namespace; nil means the embedded
	// manifest.
	Registry *Registry
}

// CompileSource translates Python source into a Context holding the emitted
// byte lines. Lex and parse failures are returned as plain errors; a
// translation failure returns a *Error carrying the offending source span,
// together with the context built up to that point.
func CompileSource(filename, source string, cfg Config) (*Context, error) {
	tokens, err := pyast.Lex(source)
	if err != nil {
		return nil, err
	}
	root, err := pyast.Parse(tokens, source)
	if err != nil {
		return nil, err
	}

	reg := cfg.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	ctx := newContext(filename, source, root)
	t := &translator{ctx: ctx, reg: reg, cfg: cfg}
	for _, stmt := range root.Body {
		if err := t.statement(stmt); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}

// CompileFile reads path and compiles it.
func CompileFile(path string, cfg Config) (*Context, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return CompileSource(path, string(src), cfg)
}

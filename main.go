package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"gocasio/pkg/casio"
	"gocasio/pkg/compiler"
)

func main() {
	name := flag.String("name", "", "on-device program name, 1-8 characters (default: derived from the source file name)")
	outPath := flag.String("out", "", "output file path, .G1M is appended if missing (default: the program name)")
	password := flag.String("pass", "", "password to lock the program source with on the calculator")
	quiet := flag.Bool("quiet", false, "suppress warnings about statements with no effect")
	dump := flag.Bool("dump", false, "print the compiled lines as hex to stdout instead of writing a file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gocasio [flags] program.py")
		flag.PrintDefaults()
		os.Exit(2)
	}
	srcPath := flag.Arg(0)

	if *dump {
		ctx := compile(srcPath, *quiet)
		for i, line := range ctx.Lines {
			fmt.Printf("%3d  [% x]\n", i+1, line)
		}
		return
	}

	progName := *name
	if progName == "" {
		progName = defaultProgramName(srcPath)
	}
	progName = strings.ToUpper(progName)
	if !casio.VerifyProgramName(progName) {
		fmt.Fprintf(os.Stderr, "%q is not a valid program name\n", progName)
		os.Exit(1)
	}
	fmt.Printf("program name is set to: %s\n", progName)

	pswd := strings.ToUpper(*password)
	if !casio.VerifyPassword(pswd) {
		fmt.Fprintf(os.Stderr, "%q is not a valid password\n", pswd)
		os.Exit(1)
	}
	if pswd != "" {
		fmt.Printf("password is set to: %s\n", pswd)
	}

	out := *outPath
	if out == "" {
		out = progName
	}
	if !strings.HasSuffix(strings.ToUpper(out), ".G1M") {
		out += ".G1M"
	}

	ctx := compile(srcPath, *quiet)
	fmt.Printf("casio code is %d lines\n", len(ctx.Lines))

	file, err := ctx.Export(progName, pswd)
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(red, err.Error()))
		os.Exit(1)
	}
	if err := os.WriteFile(out, file, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %q: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d bytes to %s\n", len(file), out)
}

// compile runs the compiler, printing warnings to stderr and exiting on error.
func compile(srcPath string, quiet bool) *compiler.Context {
	ctx, err := compiler.CompileFile(srcPath, compiler.Config{SuppressNoEffect: quiet})
	if ctx != nil {
		for _, w := range ctx.Warnings {
			fmt.Fprintln(os.Stderr, paint(yellow, w.String()))
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(red, err.Error()))
		os.Exit(1)
	}
	return ctx
}

// defaultProgramName derives an on-device name from the source file name:
// extension and underscores dropped, cut to 8 characters. The result still
// goes through name validation, so a file with characters the calculator
// can't store needs an explicit -name.
func defaultProgramName(path string) string {
	base := strings.ToLower(filepath.Base(path))
	base = strings.TrimSuffix(base, ".py")
	base = strings.ReplaceAll(base, "_", "")
	if len(base) > 8 {
		base = base[:8]
	}
	return base
}

const (
	red    = "31"
	yellow = "33"
)

// paint wraps s in an ANSI color when stderr is a terminal, so diagnostics
// stand out interactively but stay clean in logs and pipes.
func paint(color, s string) string {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return s
	}
	return "\x1b[" + color + "m" + s + "\x1b[0m"
}

package main

import (
	"fmt"
	"os"

	"gocasio/pkg/casio"
	"gocasio/pkg/compiler"
	"gocasio/pkg/pyast"
)

const testSource = `from gocasio.casio.input import number_input
x = number_input("X?")
y = 2 * x + 1
print(y)
`

// casiodump shows every stage of a compilation: the token stream, the tree,
// the emitted byte lines, the symbol table and the device framing. Run it
// with a source file, or with no arguments for the built-in demo program.
func main() {
	src := testSource
	filename := "<demo>"
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = string(data)
		filename = os.Args[1]
	}

	tokens, err := pyast.Lex(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lex error:", err)
		os.Exit(1)
	}
	fmt.Printf("Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Println(" ", tok)
	}
	fmt.Println()

	root, err := pyast.Parse(tokens, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		os.Exit(1)
	}
	fmt.Println("AST")
	for _, s := range root.Body {
		fmt.Println(" ", s)
	}
	fmt.Println()

	ctx, err := compiler.CompileSource(filename, src, compiler.Config{})
	if ctx != nil {
		for _, w := range ctx.Warnings {
			fmt.Fprintln(os.Stderr, w)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Lines (%d)\n", len(ctx.Lines))
	for i, line := range ctx.Lines {
		fmt.Printf("  %3d  [% x]\n", i+1, line)
	}
	fmt.Println()

	fmt.Print(ctx.Symbols)

	program := ctx.Program()
	fmt.Printf("\nProgram: %d bytes raw, %d on device\n",
		len(program), casio.CodeRegionSize(len(program))+28)
}

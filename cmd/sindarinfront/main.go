// Command sindarinfront is a minimal driver over the lexer (its only
// subcommand is tokenize), dispatching on a subcommand the way a small compiler driver's
// root package dispatches on os.Args. It exists to exercise the library
// packages end to end; a real build/link pipeline is out of scope
// (no codegen, no linking, no driver beyond this).
package main

import (
	"fmt"
	"os"

	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/arena"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/lexer"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/token"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: sindarinfront <tokenize> <file>")
		os.Exit(64)
	}

	command := os.Args[1]
	filename := os.Args[2]

	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sindarinfront: %v\n", err)
		os.Exit(66)
	}

	switch command {
	case "tokenize":
		runTokenize(source, filename)
	default:
		fmt.Fprintf(os.Stderr, "sindarinfront: unknown command %q\n", command)
		os.Exit(64)
	}
}

func runTokenize(source []byte, filename string) {
	a := arena.New(len(source) * 2)
	lx := lexer.New(a, source, filename)

	hadError := false
	for {
		tok := lx.ScanToken()
		printToken(tok)
		if tok.Kind == token.ERROR {
			hadError = true
		}
		if tok.Kind == token.EOF {
			break
		}
	}

	if hadError {
		os.Exit(65)
	}
}

func printToken(tok token.Token) {
	if tok.Kind == token.ERROR {
		fmt.Printf("%d ERROR %s\n", tok.Line, tok.Message)
		return
	}
	fmt.Printf("%d %s %q\n", tok.Line, tok.Kind, tok.Lexeme)
}

// Command goldentest runs every fixture under testdata/golden through the
// lexer and diffs the rendered token stream (ERROR tokens appear in it as
// `ERROR <message>` lines) against a sibling `.expected` file, printing a
// colored pass/fail summary. It adapts a familiar TestFramework shape
// (collectSuites/executeTests/PrintResult/printDiff, recognizable from a prior
// main.go), which instead shells out to two compiled binaries and diffs
// their stdout: there is no second implementation to compare against
// here, so the "actual" side is produced in-process by internal/lexer
// and the "expected" side is the checked-in fixture file rather than a
// reference executable's output.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/arena"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/lexer"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/token"
)

const width = 100

type testCase struct {
	name     string
	expected string
	actual   string
}

func main() {
	root := "testdata/golden"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	cases, err := collectCases(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goldentest: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, tc := range cases {
		if tc.expected == tc.actual {
			fmt.Printf("[%s] %s\n", color.GreenString("pass"), tc.name)
			continue
		}
		failed++
		fmt.Println(strings.Repeat("-", width))
		fmt.Printf("[%s] %s\n", color.RedString("fail"), tc.name)
		printDiff(tc.expected, tc.actual)
	}

	fmt.Println(strings.Repeat("=", width))
	fmt.Printf("%d case(s), %d failed\n", len(cases), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// collectCases reads every `*.sn` file under root and renders its token
// stream; the expected side is the contents of the matching `*.expected`
// sibling file.
func collectCases(root string) ([]testCase, error) {
	var names []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".sn") {
			names = append(names, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	var cases []testCase
	for _, name := range names {
		source, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		expectedPath := strings.TrimSuffix(name, ".sn") + ".expected"
		expected, err := os.ReadFile(expectedPath)
		if err != nil {
			return nil, fmt.Errorf("missing golden file for %s: %w", name, err)
		}
		cases = append(cases, testCase{
			name:     name,
			expected: string(expected),
			actual:   renderTokens(source, name),
		})
	}
	return cases, nil
}

func renderTokens(source []byte, filename string) string {
	a := arena.New(len(source) * 2)
	lx := lexer.New(a, source, filename)

	var sb strings.Builder
	for {
		tok := lx.ScanToken()
		if tok.Kind == token.ERROR {
			fmt.Fprintf(&sb, "ERROR %s\n", tok.Message)
		} else {
			fmt.Fprintf(&sb, "%s\n", tok.Kind)
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return sb.String()
}

func printDiff(expected, actual string) {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")
	n := len(expectedLines)
	if len(actualLines) > n {
		n = len(actualLines)
	}
	half := width / 2
	fmt.Printf("%-*s%s\n", half, "expected", "actual")
	for i := 0; i < n; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		marker := " "
		if e != a {
			marker = color.RedString("x")
		}
		fmt.Printf("%-*s%s %s\n", half, e, marker, a)
	}
}

// Package diagnostics collects and renders type-checker and lexer
// errors. Diagnostics never abort a compilation in progress: the
// checker keeps walking after an error, and the sink
// simply accumulates and the caller decides what to do with a non-empty
// set. Rendering borrows a familiar fatih/color convention
// (main.go's red/green PrintResult) for an optional colored summary line
// (PrintSummary); cmd/goldentest does not use it.
package diagnostics

import (
	"fmt"

	"github.com/fatih/color"
)

// Category groups a diagnostic by the phase that raised it.
type Category string

const (
	LexError  Category = "lex error"
	TypeError Category = "type error"
)

// Kind names a specific diagnostic's condition, primarily so tests can
// assert on the failure mode without string-matching the message.
type Kind string

const (
	// Lex error kinds.
	KindUnterminatedString      Kind = "unterminated_string"
	KindInvalidEscape           Kind = "invalid_escape"
	KindUnexpectedCharacter     Kind = "unexpected_character"
	KindUnknownPragma           Kind = "unknown_pragma"
	KindNumberTooLong           Kind = "number_too_long"
	KindNumberOutOfRange        Kind = "number_out_of_range"
	KindInconsistentIndentation Kind = "inconsistent_indentation"
	KindEmptyCharLiteral        Kind = "empty_char_literal"
	KindUnterminatedChar        Kind = "unterminated_char"

	// Type error kinds.
	KindUnboundIdentifier      Kind = "unbound_identifier"
	KindTypeMismatch           Kind = "type_mismatch"
	KindArityMismatch          Kind = "arity_mismatch"
	KindNonArrayIndexing       Kind = "non_array_indexing"
	KindNonIntegerIndex        Kind = "non_integer_index"
	KindNonNumericOperands     Kind = "non_numeric_operands"
	KindIncompatibleInterop    Kind = "incompatible_interop_mix"
	KindPointerArithmetic      Kind = "pointer_arithmetic"
	KindPointerInRegularFn     Kind = "pointer_in_regular_function"
	KindAsValOnNonPointer      Kind = "as_val_on_non_pointer"
	KindAsRefOnArray           Kind = "as_ref_on_array"
	KindDerefOpaque            Kind = "deref_opaque"
	KindMissingField           Kind = "missing_required_field"
	KindPointerFieldNonNative  Kind = "pointer_field_in_non_native_struct"
	KindCircularDependency     Kind = "circular_struct_dependency"
	KindNativeStructInRegular  Kind = "native_struct_in_regular_function"
	KindPointerReturnNoAsVal   Kind = "pointer_return_without_as_val"
	KindPointerMemberOutsideFn Kind = "pointer_member_outside_native"
	KindSliceStepOnPointer     Kind = "slice_with_step_on_pointer"
)

// Diagnostic is one reported problem, formatted as
// "<filename>:<line>: <category>: <message>".
type Diagnostic struct {
	Filename string
	Line     int
	Category Category
	Kind     Kind
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s: %s", d.Filename, d.Line, d.Category, d.Message)
}

// Sink accumulates diagnostics in source order.
type Sink struct {
	diagnostics []Diagnostic
}

// NewSink creates an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Report appends a diagnostic.
func (s *Sink) Report(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

// Errorf reports a type error at line with a formatted message.
func (s *Sink) Errorf(filename string, line int, kind Kind, format string, args ...interface{}) {
	s.Report(Diagnostic{
		Filename: filename,
		Line:     line,
		Category: TypeError,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any diagnostic has been recorded.
func (s *Sink) HasErrors() bool {
	return len(s.diagnostics) > 0
}

// All returns the recorded diagnostics in report order.
func (s *Sink) All() []Diagnostic {
	return s.diagnostics
}

// PrintSummary writes a colored pass/fail line to standard output,
// mirroring a root PrintResult: green "ok" when the sink is
// empty, red with a diagnostic count otherwise.
func PrintSummary(label string, s *Sink) {
	if !s.HasErrors() {
		color.New(color.FgGreen).Printf("%s: ok\n", label)
		return
	}
	color.New(color.FgRed).Printf("%s: %d error(s)\n", label, len(s.diagnostics))
	for _, d := range s.diagnostics {
		fmt.Println("  " + d.String())
	}
}

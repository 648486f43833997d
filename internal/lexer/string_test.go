package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/token"
)

func scanOneString(t *testing.T, source string) token.Token {
	t.Helper()
	tokens := scanAll(t, source)
	assert.NotEmpty(t, tokens)
	return tokens[0]
}

func TestScanString_Plain(t *testing.T) {
	tok := scanOneString(t, `"hello"`)
	assert.Equal(t, token.STRING_LITERAL, tok.Kind)
	assert.Equal(t, "hello", tok.Payload.StringValue)
}

func TestScanString_Escapes(t *testing.T) {
	tok := scanOneString(t, `"a\nb\tc\"d"`)
	assert.Equal(t, token.STRING_LITERAL, tok.Kind)
	assert.Equal(t, "a\nb\tc\"d", tok.Payload.StringValue)
}

func TestScanString_Unterminated(t *testing.T) {
	tok := scanOneString(t, `"abc`)
	assert.Equal(t, token.ERROR, tok.Kind)
}

func TestScanString_UnterminatedAtNewline(t *testing.T) {
	tok := scanOneString(t, "\"abc\ndef\"")
	assert.Equal(t, token.ERROR, tok.Kind)
}

func TestScanString_InterpolatedSimpleField(t *testing.T) {
	tok := scanOneString(t, `$"hi {name}"`)
	assert.Equal(t, token.INTERPOL_STRING, tok.Kind)
	assert.Equal(t, "hi {name}", tok.Payload.StringValue)
}

func TestScanString_InterpolatedNestedCallWithStringArg(t *testing.T) {
	// A `"` inside braces opens the nested call's string argument and must
	// not be mistaken for the outer string's closing quote.
	tok := scanOneString(t, `$"{greet("a")}"`)
	assert.Equal(t, token.INTERPOL_STRING, tok.Kind)
	assert.Equal(t, `{greet("a")}`, tok.Payload.StringValue)
}

func TestScanString_InterpolatedNestedBraces(t *testing.T) {
	tok := scanOneString(t, `$"{f({1, 2})}"`)
	assert.Equal(t, token.INTERPOL_STRING, tok.Kind)
	assert.Equal(t, "{f({1, 2})}", tok.Payload.StringValue)
}

func TestScanChar_Simple(t *testing.T) {
	tok := scanOneString(t, `'a'`)
	assert.Equal(t, token.CHAR_LITERAL, tok.Kind)
	assert.Equal(t, byte('a'), tok.Payload.CharValue)
}

func TestScanChar_Escape(t *testing.T) {
	tok := scanOneString(t, `'\n'`)
	assert.Equal(t, token.CHAR_LITERAL, tok.Kind)
	assert.Equal(t, byte('\n'), tok.Payload.CharValue)
}

func TestScanChar_Empty(t *testing.T) {
	tok := scanOneString(t, `''`)
	assert.Equal(t, token.ERROR, tok.Kind)
}

func TestScanChar_Unterminated(t *testing.T) {
	tok := scanOneString(t, `'a`)
	assert.Equal(t, token.ERROR, tok.Kind)
}

func TestScanChar_TooManyCharacters(t *testing.T) {
	tok := scanOneString(t, `'ab'`)
	assert.Equal(t, token.ERROR, tok.Kind)
}

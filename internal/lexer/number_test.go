package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/token"
)

func scanOneNumber(t *testing.T, source string) token.Token {
	t.Helper()
	tokens := scanAll(t, source)
	assert.NotEmpty(t, tokens)
	return tokens[0]
}

func TestScanNumber_BareIntDefaultsToInt(t *testing.T) {
	tok := scanOneNumber(t, "42")
	assert.Equal(t, token.INT_LITERAL, tok.Kind)
	assert.Equal(t, int64(42), tok.Payload.IntValue)
}

func TestScanNumber_LongSuffix(t *testing.T) {
	tok := scanOneNumber(t, "42L")
	assert.Equal(t, token.LONG_LITERAL, tok.Kind)
	assert.Equal(t, int64(42), tok.Payload.IntValue)
}

func TestScanNumber_ByteSuffix(t *testing.T) {
	tok := scanOneNumber(t, "200b")
	assert.Equal(t, token.BYTE_LITERAL, tok.Kind)
	assert.Equal(t, int64(200), tok.Payload.IntValue)
}

func TestScanNumber_ByteSuffixOutOfRange(t *testing.T) {
	tok := scanOneNumber(t, "256b")
	assert.Equal(t, token.ERROR, tok.Kind)
}

func TestScanNumber_UintSuffix(t *testing.T) {
	tok := scanOneNumber(t, "7u")
	assert.Equal(t, token.UINT_LITERAL, tok.Kind)
	assert.Equal(t, int64(7), tok.Payload.IntValue)
}

func TestScanNumber_Uint32Suffix(t *testing.T) {
	tok := scanOneNumber(t, "7u32")
	assert.Equal(t, token.UINT32_LITERAL, tok.Kind)
	assert.Equal(t, int64(7), tok.Payload.IntValue)
}

func TestScanNumber_Uint32SuffixOutOfRange(t *testing.T) {
	tok := scanOneNumber(t, "4294967296u32")
	assert.Equal(t, token.ERROR, tok.Kind)
}

func TestScanNumber_Int32Suffix(t *testing.T) {
	tok := scanOneNumber(t, "7i32")
	assert.Equal(t, token.INT32_LITERAL, tok.Kind)
	assert.Equal(t, int64(7), tok.Payload.IntValue)
}

func TestScanNumber_Int32SuffixOutOfRange(t *testing.T) {
	tok := scanOneNumber(t, "2147483648i32")
	assert.Equal(t, token.ERROR, tok.Kind)
}

func TestScanNumber_MalformedISuffix(t *testing.T) {
	// "i3" followed by anything other than "2" is an invalid suffix.
	tok := scanOneNumber(t, "7i35")
	assert.Equal(t, token.ERROR, tok.Kind)
}

func TestScanNumber_UnrelatedISuffixLeftForIdentifier(t *testing.T) {
	// "i" not followed by "3" is not part of the integer-suffix grammar
	// at all: the number ends at "7" and "i64" scans separately.
	tokens := scanAll(t, "7i64")
	assert.Equal(t, token.INT_LITERAL, tokens[0].Kind)
	assert.Equal(t, int64(7), tokens[0].Payload.IntValue)
	assert.Equal(t, token.IDENTIFIER, tokens[1].Kind)
}

func TestScanNumber_FractionalDefaultsToDouble(t *testing.T) {
	tok := scanOneNumber(t, "3.5")
	assert.Equal(t, token.DOUBLE_LITERAL, tok.Kind)
	assert.Equal(t, 3.5, tok.Payload.DoubleValue)
}

func TestScanNumber_FractionalFloatSuffix(t *testing.T) {
	tok := scanOneNumber(t, "3.5f")
	assert.Equal(t, token.FLOAT_LITERAL, tok.Kind)
	assert.Equal(t, 3.5, tok.Payload.DoubleValue)
}

func TestScanNumber_FractionalDoubleSuffix(t *testing.T) {
	tok := scanOneNumber(t, "3.5d")
	assert.Equal(t, token.DOUBLE_LITERAL, tok.Kind)
	assert.Equal(t, 3.5, tok.Payload.DoubleValue)
}

func TestScanNumber_TooLong(t *testing.T) {
	digits := ""
	for i := 0; i < 300; i++ {
		digits += "1"
	}
	tok := scanOneNumber(t, digits)
	assert.Equal(t, token.ERROR, tok.Kind)
}

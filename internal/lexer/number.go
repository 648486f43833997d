package lexer

import (
	"strconv"

	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/token"
)

const maxNumericLiteralLength = 255

// scanNumber consumes a numeric literal and classifies it by an optional
// typed suffix, following the exact suffix-precedence order of
// lexer_scan_number in the original source: with a fractional part the
// order is f/F, d/D, then bare (defaults to double); without one it is
// l/L, b/B, u/U-not-followed-by-3, u32/U32, i32/I32, then bare (defaults
// to int).
func (l *Lexer) scanNumber() token.Token {
	for isDigit(l.peek()) {
		l.advance()
	}

	hasFraction := false
	if l.peek() == '.' && isDigit(l.peekNext()) {
		hasFraction = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	if hasFraction {
		return l.scanFractionalSuffix()
	}
	return l.scanIntegerSuffix()
}

func (l *Lexer) scanFractionalSuffix() token.Token {
	switch l.peek() {
	case 'f', 'F':
		text := l.lexeme()
		l.advance()
		return l.finishDoubleLike(token.FLOAT_LITERAL, text)
	case 'd', 'D':
		text := l.lexeme()
		l.advance()
		return l.finishDoubleLike(token.DOUBLE_LITERAL, text)
	default:
		return l.finishDoubleLike(token.DOUBLE_LITERAL, l.lexeme())
	}
}

func (l *Lexer) finishDoubleLike(kind token.Kind, numericText string) token.Token {
	if len(numericText) > maxNumericLiteralLength {
		return l.errorToken("Number literal too long")
	}
	value, err := strconv.ParseFloat(numericText, 64)
	if err != nil {
		return l.errorToken("Invalid numeric literal")
	}
	tok := l.makeToken(kind)
	tok.Payload.DoubleValue = value
	return tok
}

func (l *Lexer) scanIntegerSuffix() token.Token {
	switch {
	case l.peek() == 'l' || l.peek() == 'L':
		text := l.lexeme()
		l.advance()
		return l.finishSignedInt(token.LONG_LITERAL, text, -64, 64)

	case l.peek() == 'b' || l.peek() == 'B':
		text := l.lexeme()
		l.advance()
		return l.finishByte(text)

	case (l.peek() == 'u' || l.peek() == 'U') && l.peekNext() != '3':
		text := l.lexeme()
		l.advance()
		return l.finishUnsigned(token.UINT_LITERAL, text, 64)

	case (l.peek() == 'u' || l.peek() == 'U') && l.peekNext() == '3':
		text := l.lexeme()
		l.advance() // consume u/U
		if l.peek() == '3' && l.peekNext() == '2' {
			l.advance()
			l.advance()
			return l.finishUnsigned(token.UINT32_LITERAL, text, 32)
		}
		return l.finishUnsigned(token.UINT_LITERAL, text, 64)

	case (l.peek() == 'i' || l.peek() == 'I') && l.peekNext() == '3':
		text := l.lexeme()
		l.advance() // consume i/I
		if l.peek() == '3' && l.peekNext() == '2' {
			l.advance()
			l.advance()
			return l.finishSignedInt(token.INT32_LITERAL, text, -32, 32)
		}
		return l.errorToken("Invalid number suffix")

	default:
		return l.finishSignedInt(token.INT_LITERAL, l.lexeme(), -64, 64)
	}
}

// finishSignedInt parses numericText (digits only, no suffix) as a signed
// integer and range-checks it against [-2^(bits-1), 2^(bits-1)-1], except
// for 64-bit literals (int/long) where the underlying type is i64 and the
// parse itself enforces the range.
func (l *Lexer) finishSignedInt(kind token.Kind, numericText string, _, bits int) token.Token {
	if len(numericText) > maxNumericLiteralLength {
		return l.errorToken("Number literal too long")
	}
	value, err := strconv.ParseInt(numericText, 10, 64)
	if err != nil {
		return l.errorToken("Number literal out of range")
	}
	if bits == 32 {
		if value < int64(int32Min) || value > int64(int32Max) {
			return l.errorToken("Int32 literal out of range")
		}
	}
	tok := l.makeToken(kind)
	tok.Payload.IntValue = value
	return tok
}

func (l *Lexer) finishUnsigned(kind token.Kind, numericText string, bits int) token.Token {
	if len(numericText) > maxNumericLiteralLength {
		return l.errorToken("Number literal too long")
	}
	value, err := strconv.ParseUint(numericText, 10, 64)
	if err != nil {
		return l.errorToken("Number literal out of range")
	}
	if bits == 32 && value > uint64(uint32Max) {
		return l.errorToken("Uint32 literal out of range")
	}
	tok := l.makeToken(kind)
	tok.Payload.IntValue = int64(value)
	return tok
}

func (l *Lexer) finishByte(numericText string) token.Token {
	if len(numericText) > maxNumericLiteralLength {
		return l.errorToken("Number literal too long")
	}
	value, err := strconv.ParseInt(numericText, 10, 64)
	if err != nil || value < 0 || value > 255 {
		return l.errorToken("Byte literal out of range (0-255)")
	}
	tok := l.makeToken(token.BYTE_LITERAL)
	tok.Payload.IntValue = value
	return tok
}

const (
	int32Min  = -2147483648
	int32Max  = 2147483647
	uint32Max = 4294967295
)

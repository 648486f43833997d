package lexer

import "github.com/SindarinSDK/sindarin-compiler-sub000/internal/token"

// scanString consumes a string literal body up to its closing quote. kind
// selects STRING_LITERAL ("...") or INTERPOL_STRING ($"..."); the opening
// quote has already been consumed by the caller.
//
// For an interpolated string, `{` opens an embedded expression region and
// `}` closes it; braceDepth tracks nesting so a literal `}` inside a
// nested array/struct expression doesn't end the region early. A quote
// encountered while braceDepth > 0 belongs to a string literal nested
// inside that expression (e.g. $"{greet("a")}") and is tracked with
// stringDepth so it isn't mistaken for the outer string's closing quote,
// and so braces inside that nested string aren't counted against
// braceDepth.
func (l *Lexer) scanString(kind token.Kind) token.Token {
	startLine := l.line
	var content []byte
	braceDepth := 0
	stringDepth := 0

	for {
		if l.isAtEnd() || l.peek() == '\n' {
			tok := l.errorToken("Unterminated string")
			tok.Line = startLine
			l.line = startLine
			return tok
		}

		c := l.peek()

		if c == '\\' {
			l.advance()
			if l.isAtEnd() {
				tok := l.errorToken("Unterminated string")
				tok.Line = startLine
				l.line = startLine
				return tok
			}
			esc := l.advance()
			if braceDepth > 0 {
				content = append(content, '\\', esc)
				continue
			}
			switch esc {
			case '\\':
				content = append(content, '\\')
			case 'n':
				content = append(content, '\n')
			case 'r':
				content = append(content, '\r')
			case 't':
				content = append(content, '\t')
			case '"':
				content = append(content, '"')
			case '$':
				content = append(content, '$')
			default:
				content = append(content, '\\', esc)
			}
			continue
		}

		if c == '"' {
			if braceDepth == 0 {
				l.advance()
				break
			}
			stringDepth ^= 1
			content = append(content, c)
			l.advance()
			continue
		}

		if kind == token.INTERPOL_STRING && stringDepth == 0 {
			if c == '{' {
				braceDepth++
				content = append(content, c)
				l.advance()
				continue
			}
			if c == '}' && braceDepth > 0 {
				braceDepth--
				content = append(content, c)
				l.advance()
				continue
			}
		}

		content = append(content, c)
		l.advance()
	}

	tok := l.makeToken(kind)
	tok.Payload.StringValue = l.arena.AllocString(string(content))
	return tok
}

// scanChar consumes a char literal body; the opening quote has already
// been consumed by the caller.
func (l *Lexer) scanChar() token.Token {
	if l.peek() == '\'' {
		return l.errorToken("Empty character literal")
	}

	var value byte
	if l.peek() == '\\' {
		l.advance()
		if l.isAtEnd() {
			return l.errorToken("Unterminated character literal")
		}
		switch esc := l.advance(); esc {
		case '\\':
			value = '\\'
		case 'n':
			value = '\n'
		case 'r':
			value = '\r'
		case 't':
			value = '\t'
		case '\'':
			value = '\''
		case '0':
			value = 0
		default:
			value = esc
		}
	} else {
		if l.isAtEnd() || l.peek() == '\n' {
			return l.errorToken("Unterminated character literal")
		}
		value = l.advance()
	}

	if l.peek() != '\'' {
		return l.errorToken("Unterminated character literal")
	}
	l.advance()

	tok := l.makeToken(token.CHAR_LITERAL)
	tok.Payload.CharValue = value
	return tok
}

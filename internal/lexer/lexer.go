// Package lexer implements the Language's indentation-sensitive scanner.
// It follows a cursor-based scanner shape (peek/advance over an index
// into the source), generalized to byte-index navigation so the indent
// state machine can rewind the cursor, which a strictly-incrementing
// index cannot do.
package lexer

import (
	"fmt"

	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/arena"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/token"
)

// Lexer is single-threaded and stateful; callers pull one token at a time
// via ScanToken. Two independent compilations must use two Lexers.
type Lexer struct {
	arena    *arena.Arena
	source   []byte
	filename string

	start  int // lexeme_start
	cursor int // current read position

	line int

	indentStack []int
	atLineStart bool

	// pendingIndent/pendingCursor replay a multi-level dedent across
	// successive ScanToken calls without re-scanning the line's
	// whitespace. pendingIndent < 0 means "no pending dedent".
	pendingIndent int
	pendingCursor int

	// pendingNewline lets a pipe block string (which must swallow the
	// newline that opens the block, and every newline within it, while
	// scanning) still produce the statement-terminating NEWLINE token a
	// reader expects after the string literal, without violating the
	// one-token-per-call contract.
	pendingNewline bool
}

// New creates a Lexer over source, attributing tokens to filename. All
// token lexemes and literal strings it produces are copied into arena.
func New(a *arena.Arena, source []byte, filename string) *Lexer {
	return &Lexer{
		arena:         a,
		source:        source,
		filename:      filename,
		line:          1,
		indentStack:   []int{0},
		atLineStart:   true,
		pendingIndent: -1,
	}
}

func (l *Lexer) isAtEnd() bool {
	return l.cursor >= len(l.source)
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.cursor]
}

func (l *Lexer) peekNext() byte {
	if l.cursor+1 >= len(l.source) {
		return 0
	}
	return l.source[l.cursor+1]
}

func (l *Lexer) advance() byte {
	c := l.source[l.cursor]
	l.cursor++
	return c
}

func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.source[l.cursor] != expected {
		return false
	}
	l.cursor++
	return true
}

func (l *Lexer) lexeme() string {
	return string(l.source[l.start:l.cursor])
}

func (l *Lexer) makeToken(kind token.Kind) token.Token {
	return token.Token{
		Kind:     kind,
		Lexeme:   l.arena.AllocString(l.lexeme()),
		Line:     l.line,
		Filename: l.filename,
	}
}

func (l *Lexer) errorToken(message string) token.Token {
	return token.Token{
		Kind:     token.ERROR,
		Message:  l.arena.AllocString(message),
		Line:     l.line,
		Filename: l.filename,
	}
}

// hasPrefixAt reports whether source[pos:] starts with prefix, without
// panicking when pos+len(prefix) runs past the end of source.
func hasPrefixAt(source []byte, pos int, prefix string) bool {
	if pos < 0 || pos+len(prefix) > len(source) {
		return false
	}
	return string(source[pos:pos+len(prefix)]) == prefix
}

// skipWhitespace skips spaces/tabs/CR and `//`/`#` line comments within a
// line, matching lexer_skip_whitespace in the original source: it never
// consumes the newline itself, and a `#pragma` is never treated as a
// comment.
func (l *Lexer) skipWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		case '\n':
			return
		case '/':
			if l.peekNext() == '/' {
				for l.peek() != '\n' && !l.isAtEnd() {
					l.advance()
				}
			} else {
				return
			}
		case '#':
			if hasPrefixAt(l.source, l.cursor+1, "pragma") {
				return
			}
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		default:
			return
		}
	}
}

// ScanToken produces the next token in the stream. It may be called
// repeatedly until it returns an EOF token (further calls keep returning
// EOF).
func (l *Lexer) ScanToken() token.Token {
	if l.pendingNewline {
		l.pendingNewline = false
		l.atLineStart = true
		l.start = l.cursor
		return l.makeToken(token.NEWLINE)
	}

	if l.atLineStart {
		if tok, done := l.handleIndentation(); done {
			return tok
		}
	}

	l.skipWhitespace()
	l.start = l.cursor

	if !l.isAtEnd() && l.peek() == '\n' {
		l.advance()
		l.line++
		l.atLineStart = true
		return l.makeToken(token.NEWLINE)
	}

	if l.isAtEnd() {
		// Drain any indentation levels still open before EOF so the
		// indent stack returns to [0] by the time EOF is reached.
		if len(l.indentStack) > 1 {
			l.indentStack = l.indentStack[:len(l.indentStack)-1]
			return l.makeToken(token.DEDENT)
		}
		return l.makeToken(token.EOF)
	}

	c := l.advance()
	if c == '\n' {
		l.line++
		l.atLineStart = true
		return l.makeToken(token.NEWLINE)
	}

	if isAlpha(c) {
		return l.scanIdentifier()
	}
	if isDigit(c) {
		return l.scanNumber()
	}

	return l.scanPunctuation(c)
}

func (l *Lexer) scanPunctuation(c byte) token.Token {
	switch c {
	case '&':
		if l.match('&') {
			return l.makeToken(token.AND)
		}
		return l.makeToken(token.AMPERSAND)
	case '%':
		if l.match('=') {
			return l.makeToken(token.MODULO_EQUAL)
		}
		return l.makeToken(token.MODULO)
	case '/':
		if l.match('=') {
			return l.makeToken(token.SLASH_EQUAL)
		}
		return l.makeToken(token.SLASH)
	case '*':
		if l.match('=') {
			return l.makeToken(token.STAR_EQUAL)
		}
		return l.makeToken(token.STAR)
	case '+':
		if l.match('+') {
			return l.makeToken(token.PLUS_PLUS)
		} else if l.match('=') {
			return l.makeToken(token.PLUS_EQUAL)
		}
		return l.makeToken(token.PLUS)
	case '(':
		return l.makeToken(token.LEFT_PAREN)
	case ')':
		return l.makeToken(token.RIGHT_PAREN)
	case ':':
		return l.makeToken(token.COLON)
	case '-':
		if l.match('-') {
			return l.makeToken(token.MINUS_MINUS)
		} else if l.match('=') {
			return l.makeToken(token.MINUS_EQUAL)
		} else if l.match('>') {
			return l.makeToken(token.ARROW)
		}
		return l.makeToken(token.MINUS)
	case '=':
		if l.match('=') {
			return l.makeToken(token.EQUAL_EQUAL)
		}
		if l.match('>') {
			return l.makeToken(token.ARROW)
		}
		return l.makeToken(token.EQUAL)
	case '<':
		if l.match('=') {
			return l.makeToken(token.LESS_EQUAL)
		}
		return l.makeToken(token.LESS)
	case '>':
		if l.match('=') {
			return l.makeToken(token.GREATER_EQUAL)
		}
		return l.makeToken(token.GREATER)
	case ',':
		return l.makeToken(token.COMMA)
	case ';':
		return l.makeToken(token.SEMICOLON)
	case '.':
		if l.match('.') {
			if l.match('.') {
				return l.makeToken(token.SPREAD)
			}
			return l.makeToken(token.RANGE)
		}
		return l.makeToken(token.DOT)
	case '[':
		return l.makeToken(token.LEFT_BRACKET)
	case ']':
		return l.makeToken(token.RIGHT_BRACKET)
	case '{':
		return l.makeToken(token.LEFT_BRACE)
	case '}':
		return l.makeToken(token.RIGHT_BRACE)
	case '"':
		return l.scanString(token.STRING_LITERAL)
	case '\'':
		return l.scanChar()
	case '|':
		if l.match('|') {
			return l.makeToken(token.OR)
		}
		if l.pipeBlockFollows() {
			return l.scanPipeString(false)
		}
		return l.makeToken(token.PIPE)
	case '!':
		if l.match('=') {
			return l.makeToken(token.BANG_EQUAL)
		}
		return l.makeToken(token.BANG)
	case '$':
		if l.peek() == '"' {
			l.advance()
			return l.scanString(token.INTERPOL_STRING)
		}
		if l.peek() == '|' {
			l.advance()
			if l.pipeBlockFollows() {
				return l.scanPipeString(true)
			}
			// Not a pipe block: "$|" with no following newline is
			// not a recognized construct.
			return l.errorToken("Unexpected character '$'")
		}
		return l.scanPragmaOrError(c)
	case '#':
		return l.scanPragmaOrError(c)
	default:
		return l.errorToken(fmt.Sprintf("Unexpected character '%c'", c))
	}
}

// pipeBlockFollows reports whether the cursor is positioned right after a
// `|`/`$|` that is followed only by spaces/tabs and then a newline or EOF
// — the opening condition for a pipe block string.
func (l *Lexer) pipeBlockFollows() bool {
	check := l.cursor
	for check < len(l.source) && (l.source[check] == ' ' || l.source[check] == '\t') {
		check++
	}
	return check >= len(l.source) || l.source[check] == '\n' || l.source[check] == '\r'
}

func (l *Lexer) scanPragmaOrError(c byte) token.Token {
	if hasPrefixAt(l.source, l.cursor, "pragma") {
		l.cursor += len("pragma")
		for l.peek() == ' ' || l.peek() == '\t' {
			l.advance()
		}
		switch {
		case hasPrefixAt(l.source, l.cursor, "include"):
			l.cursor += len("include")
			return l.makeToken(token.PRAGMA_INCLUDE)
		case hasPrefixAt(l.source, l.cursor, "link"):
			l.cursor += len("link")
			return l.makeToken(token.PRAGMA_LINK)
		case hasPrefixAt(l.source, l.cursor, "source"):
			l.cursor += len("source")
			return l.makeToken(token.PRAGMA_SOURCE)
		case hasPrefixAt(l.source, l.cursor, "pack"):
			l.cursor += len("pack")
			return l.makeToken(token.PRAGMA_PACK)
		case hasPrefixAt(l.source, l.cursor, "alias"):
			l.cursor += len("alias")
			return l.makeToken(token.PRAGMA_ALIAS)
		default:
			return l.errorToken("Unknown pragma directive")
		}
	}
	return l.errorToken(fmt.Sprintf("Unexpected character '%c'", c))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

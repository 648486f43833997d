package lexer

import "github.com/SindarinSDK/sindarin-compiler-sub000/internal/token"

// handleIndentation compares the current line's indent width against the
// indent stack. It is called only when atLineStart
// is true. A (token, false) result means "no indentation token to emit,
// continue scanning the line normally" (the indent was unchanged, or the
// line was blank/comment-only and the cursor has been rewound).
func (l *Lexer) handleIndentation() (token.Token, bool) {
	var currentIndent, lineStart int

	if l.pendingIndent >= 0 {
		currentIndent = l.pendingIndent
		lineStart = l.pendingCursor
	} else {
		indentStart := l.cursor
		for l.peek() == ' ' || l.peek() == '\t' {
			currentIndent++
			l.advance()
		}
		lineStart = l.cursor

		if l.isCommentOnlyLine() {
			l.cursor = indentStart
			l.start = indentStart
			return token.Token{}, false
		}
	}

	l.cursor = lineStart
	l.start = l.cursor

	top := l.indentStack[len(l.indentStack)-1]
	switch {
	case currentIndent > top:
		l.indentStack = append(l.indentStack, currentIndent)
		l.atLineStart = false
		l.pendingIndent = -1
		return l.makeToken(token.INDENT), true

	case currentIndent < top:
		l.indentStack = l.indentStack[:len(l.indentStack)-1]
		newTop := l.indentStack[len(l.indentStack)-1]
		switch {
		case currentIndent == newTop:
			l.atLineStart = false
			l.pendingIndent = -1
		case currentIndent > newTop:
			l.pendingIndent = -1
			return l.errorToken("Inconsistent indentation"), true
		default:
			// More dedents needed: replay on the next call.
			l.pendingIndent = currentIndent
			l.pendingCursor = lineStart
		}
		return l.makeToken(token.DEDENT), true

	default:
		l.atLineStart = false
		l.pendingIndent = -1
		return token.Token{}, false
	}
}

// isCommentOnlyLine reports whether, after the leading indentation, the
// rest of the line is blank, a `//` comment, a `#` comment, or EOF. A
// `#pragma` line is explicitly excluded: it participates in the indent
// grammar like any other statement.
func (l *Lexer) isCommentOnlyLine() bool {
	switch {
	case l.isAtEnd() || l.peek() == '\n' || l.peek() == '\r':
		return true
	case l.peek() == '/' && l.peekNext() == '/':
		return true
	case l.peek() == '#':
		return !hasPrefixAt(l.source, l.cursor+1, "pragma")
	default:
		return false
	}
}

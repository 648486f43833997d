package lexer

import "github.com/SindarinSDK/sindarin-compiler-sub000/internal/token"

// pipeLine is one raw line collected during the first pass of a pipe
// block string, before the common indentation is known.
type pipeLine struct {
	leadingWS string
	text      string
	indent    int
	blank     bool
}

// scanPipeString consumes a pipe block string. The opening `|`/`$|` has
// already been consumed and confirmed (by pipeBlockFollows) to be
// followed only by trailing whitespace and a newline. Every subsequent
// line indented more deeply than the indentation level active when the
// block opened belongs to the block; the block ends at the first line at
// or below that level, or at EOF.
//
// It runs in two passes: the first collects each line's raw text and
// indent width without deciding how much of that indent is significant;
// the second re-emits the block with the common leading indentation
// (the minimum indent among non-blank lines) stripped, so only
// indentation relative to the shallowest line survives into the literal.
func (l *Lexer) scanPipeString(interpolated bool) token.Token {
	baseIndent := l.indentStack[len(l.indentStack)-1]

	for l.peek() == ' ' || l.peek() == '\t' {
		l.advance()
	}
	if l.peek() == '\r' {
		l.advance()
	}
	if l.peek() == '\n' {
		l.advance()
		l.line++
	}

	var lines []pipeLine

	for !l.isAtEnd() {
		lineStart := l.cursor
		indent := 0
		for l.peek() == ' ' || l.peek() == '\t' {
			indent++
			l.advance()
		}
		leadingWS := string(l.source[lineStart:l.cursor])

		blank := l.isAtEnd() || l.peek() == '\n' || l.peek() == '\r'
		if !blank && indent <= baseIndent {
			l.cursor = lineStart
			break
		}

		contentStart := l.cursor
		for !l.isAtEnd() && l.peek() != '\n' {
			l.advance()
		}
		text := string(l.source[contentStart:l.cursor])

		if !l.isAtEnd() {
			l.advance()
			l.line++
		}

		lines = append(lines, pipeLine{leadingWS: leadingWS, text: text, indent: indent, blank: blank})
	}

	minContentIndent := -1
	for _, ln := range lines {
		if ln.blank {
			continue
		}
		if minContentIndent == -1 || ln.indent < minContentIndent {
			minContentIndent = ln.indent
		}
	}
	if minContentIndent == -1 {
		minContentIndent = baseIndent + 1
	}

	var content []byte
	for _, ln := range lines {
		if ln.blank {
			content = append(content, '\n')
			continue
		}
		strip := minContentIndent
		if strip > len(ln.leadingWS) {
			strip = len(ln.leadingWS)
		}
		content = append(content, ln.leadingWS[strip:]...)
		content = append(content, ln.text...)
		content = append(content, '\n')
	}

	l.pendingNewline = true
	l.pendingIndent = -1

	kind := token.STRING_LITERAL
	if interpolated {
		kind = token.INTERPOL_STRING
	}
	tok := l.makeToken(kind)
	tok.Payload.StringValue = l.arena.AllocString(string(content))
	return tok
}

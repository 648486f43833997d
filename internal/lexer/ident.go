package lexer

import "github.com/SindarinSDK/sindarin-compiler-sub000/internal/token"

// scanIdentifier consumes an identifier/keyword and classifies it with a
// hand-written trie-style switch mirroring lexer_identifier_type in the
// original source: branch on the first byte, then the second, resolving
// shared-prefix ambiguities (struct/static, long/lock, val/var,
// type/typeof, int/in/int32, uint/uint32) by inspecting a specific later
// byte or the total lexeme length rather than a generic string compare.
func (l *Lexer) scanIdentifier() token.Token {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	kind := l.identifierKind()
	tok := l.makeToken(kind)
	if kind == token.BOOL_LITERAL {
		tok.Payload.BoolValue = tok.Lexeme == "true"
	}
	return tok
}

func (l *Lexer) identifierKind() token.Kind {
	text := l.source[l.start:l.cursor]
	n := len(text)
	if n == 0 {
		return token.IDENTIFIER
	}

	checkRest := func(start, length int, rest string, kind token.Kind) token.Kind {
		if n == start+length && string(text[start:start+length]) == rest {
			return kind
		}
		return token.IDENTIFIER
	}

	switch text[0] {
	case 'a':
		if n > 1 {
			switch text[1] {
			case 's':
				return checkRest(2, 0, "", token.AS)
			case 'n':
				return checkRest(2, 1, "y", token.ANY)
			}
		}
	case 'b':
		if n > 1 {
			switch text[1] {
			case 'o':
				return checkRest(2, 2, "ol", token.BOOL)
			case 'r':
				return checkRest(2, 3, "eak", token.BREAK)
			case 'y':
				return checkRest(2, 2, "te", token.BYTE)
			}
		}
	case 'c':
		if n > 1 {
			switch text[1] {
			case 'h':
				return checkRest(2, 2, "ar", token.CHAR)
			case 'o':
				return checkRest(2, 6, "ntinue", token.CONTINUE)
			}
		}
	case 'd':
		if n > 1 && text[1] == 'o' {
			return checkRest(2, 4, "uble", token.DOUBLE)
		}
	case 'e':
		return checkRest(1, 3, "lse", token.ELSE)
	case 'f':
		if n > 1 {
			switch text[1] {
			case 'a':
				return checkRest(2, 3, "lse", token.BOOL_LITERAL)
			case 'l':
				return checkRest(2, 3, "oat", token.FLOAT)
			case 'n':
				return checkRest(2, 0, "", token.FN)
			case 'o':
				return checkRest(2, 1, "r", token.FOR)
			}
		}
	case 'i':
		if n > 1 {
			switch text[1] {
			case 'f':
				return checkRest(2, 0, "", token.IF)
			case 'm':
				return checkRest(2, 4, "port", token.IMPORT)
			case 'n':
				if n == 2 {
					return token.IN
				}
				if n == 5 {
					return checkRest(2, 3, "t32", token.INT32)
				}
				return checkRest(2, 1, "t", token.INT)
			case 's':
				return checkRest(2, 0, "", token.IS)
			}
		}
	case 'l':
		if n > 1 && text[1] == 'o' {
			if n == 4 && text[2] == 'c' {
				return checkRest(2, 2, "ck", token.LOCK)
			}
			return checkRest(2, 2, "ng", token.LONG)
		}
	case 'n':
		if n > 1 {
			switch text[1] {
			case 'a':
				return checkRest(2, 4, "tive", token.NATIVE)
			case 'i':
				return checkRest(2, 1, "l", token.NIL)
			}
		}
	case 'o':
		return checkRest(1, 5, "paque", token.OPAQUE)
	case 'p':
		return checkRest(1, 6, "rivate", token.PRIVATE)
	case 'r':
		if n > 1 && text[1] == 'e' {
			if n == 3 {
				return checkRest(2, 1, "f", token.REF)
			}
			return checkRest(2, 4, "turn", token.RETURN)
		}
	case 's':
		if n > 1 {
			switch text[1] {
			case 't':
				if n == 6 {
					if text[2] == 'r' {
						return checkRest(2, 4, "ruct", token.STRUCT)
					}
					return checkRest(2, 4, "atic", token.STATIC)
				}
				return checkRest(2, 1, "r", token.STR)
			case 'h':
				return checkRest(2, 4, "ared", token.SHARED)
			case 'i':
				return checkRest(2, 4, "zeof", token.SIZEOF)
			case 'y':
				return checkRest(2, 2, "nc", token.SYNC)
			}
		}
	case 't':
		if n > 1 {
			switch text[1] {
			case 'r':
				return checkRest(2, 2, "ue", token.BOOL_LITERAL)
			case 'y':
				if n == 6 {
					return checkRest(2, 4, "peof", token.TYPEOF)
				}
				return checkRest(2, 2, "pe", token.KEYWORD_TYPE)
			}
		}
	case 'u':
		if n > 1 && text[1] == 'i' {
			if n == 6 {
				return checkRest(2, 4, "nt32", token.UINT32)
			}
			return checkRest(2, 2, "nt", token.UINT)
		}
	case 'v':
		if n > 1 {
			switch text[1] {
			case 'a':
				if n == 3 {
					switch text[2] {
					case 'l':
						return token.VAL
					case 'r':
						return token.VAR
					}
				}
			case 'o':
				return checkRest(2, 2, "id", token.VOID)
			}
		}
	case 'w':
		return checkRest(1, 4, "hile", token.WHILE)
	}
	return token.IDENTIFIER
}

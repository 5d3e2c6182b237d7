// Package scanner implements the REON lexical analyzer described in
// spec.md §4.1: it buffers the input eagerly, tokenizes into the REON
// vocabulary, and performs keyword disambiguation inside strings whose
// next non-whitespace character is ':'.
//
// Grounded on _examples/original_source/include/reon_lexical_analyzer.h
// (radekvit/reon, the C++ original this package's state machine is
// translated from) and on the buffering/position-tracking shape of
// github.com/dekarrin/tunaq's internal/ictiobus/lex.lazyLex.
package scanner

import (
	"io"

	"github.com/dekarrin/reon/internal/reon/symbol"
	"github.com/dekarrin/reon/internal/reonerr"
)

// Token is a lexeme read from the source, tagged with the Symbol class it
// was resolved to and the position it started at.
type Token struct {
	symbol.Symbol
	Row int
	Col int
}

// Name classes recognized by the scanner. Structural terminals use their
// own literal character as their name.
const (
	ClassString          = "string"
	ClassNumber          = "number"
	ClassTrue            = "true"
	ClassFalse           = "false"
	ClassNull            = "null"
	ClassRepeat          = "repeat"
	ClassNonGreedyRepeat = "non-greedy repeat"
	ClassSet             = "set"
	ClassNegSet          = "!set"
	ClassAlternatives    = "alternatives"
	ClassGroup           = "group"
	ClassNamedGroup      = "named group"
	ClassMatchGroup      = "match group"
	ClassComment         = "comment"
	ClassLookahead       = "lookahead"
	ClassNegLookahead    = "!lookahead"
	ClassLookbehind      = "lookbehind"
	ClassNegLookbehind   = "!lookbehind"
	ClassIf              = "if"
	ClassThen            = "then"
	ClassElse            = "else"
)

// Scanner is single-use per input stream; construct a new one to restart.
type Scanner struct {
	buf  []byte
	pos  int
	row  int
	col  int
	done bool
	last Token
}

// New reads all of r into a buffer and returns a Scanner positioned at the
// start of it. The read happens once, eagerly, here; Next never touches r
// again.
func New(r io.Reader) (*Scanner, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Scanner{buf: data, row: 1, col: 1}, nil
}

func (s *Scanner) eof() bool { return s.pos >= len(s.buf) }

// peekByte returns the byte at the current position without consuming it,
// and whether one was available.
func (s *Scanner) peekByte() (byte, bool) {
	if s.eof() {
		return 0, false
	}
	return s.buf[s.pos], true
}

// readByte consumes and returns the next byte, advancing row/col.
func (s *Scanner) readByte() (byte, bool) {
	if s.eof() {
		return 0, false
	}
	c := s.buf[s.pos]
	s.pos++
	if c == '\n' {
		s.row++
		s.col = 1
	} else {
		s.col++
	}
	return c, true
}

// skipSpace advances past ASCII whitespace without consuming a
// following non-space byte.
func (s *Scanner) skipSpace() {
	for {
		c, ok := s.peekByte()
		if !ok || !isSpace(c) {
			return
		}
		s.readByte()
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Next returns the next token. It is idempotent on Eof: once end-of-input
// has been reported, every subsequent call returns it again.
func (s *Scanner) Next() (Token, error) {
	if s.done {
		return s.last, nil
	}

	s.skipSpace()
	row, col := s.row, s.col
	c, ok := s.peekByte()
	if !ok {
		s.done = true
		s.last = Token{Symbol: symbol.EofSymbol, Row: row, Col: col}
		return s.last, nil
	}

	switch c {
	case '[', ']', '{', '}', ',', ':':
		s.readByte()
		return s.tok(symbol.NewTerminal(string(c), ""), row, col), nil
	case '"':
		return s.scanString(row, col)
	case 't':
		return s.scanLiteral("true", symbol.NewTerminal(ClassTrue, ""), row, col)
	case 'f':
		return s.scanLiteral("false", symbol.NewTerminal(ClassFalse, ""), row, col)
	case 'n':
		return s.scanLiteral("null", symbol.NewTerminal(ClassNull, ""), row, col)
	default:
		if c == '-' || isDigit(c) {
			return s.scanNumber(row, col)
		}
	}
	return Token{}, reonerr.Lexicalf(row, col, "no token begins with %q", string(c))
}

func (s *Scanner) tok(sym symbol.Symbol, row, col int) Token {
	return Token{Symbol: sym, Row: row, Col: col}
}

// scanLiteral matches the remaining bytes of a fixed keyword (true, false,
// null) after its first character has already been peeked.
func (s *Scanner) scanLiteral(word string, out symbol.Symbol, row, col int) (Token, error) {
	for i := 0; i < len(word); i++ {
		c, ok := s.readByte()
		if !ok {
			return Token{}, reonerr.Lexicalf(s.row, s.col, "unexpected end of input reading %q", word)
		}
		if c != word[i] {
			return Token{}, reonerr.Lexicalf(s.row, s.col, "unexpected %q reading %q", string(c), word)
		}
	}
	return s.tok(out, row, col), nil
}

// scanNumber implements the JSON number grammar of spec.md §4.1.
func (s *Scanner) scanNumber(row, col int) (Token, error) {
	start := s.pos
	if c, _ := s.peekByte(); c == '-' {
		s.readByte()
	}

	c, ok := s.peekByte()
	if !ok {
		return Token{}, reonerr.Lexicalf(s.row, s.col, "unexpected end of input reading a number")
	}
	if !isDigit(c) {
		return Token{}, reonerr.Lexicalf(s.row, s.col, "unexpected %q reading a number", string(c))
	}
	if c == '0' {
		s.readByte()
	} else {
		for {
			c, ok := s.peekByte()
			if !ok || !isDigit(c) {
				break
			}
			s.readByte()
		}
	}

	if c, ok := s.peekByte(); ok && c == '.' {
		s.readByte()
		c, ok := s.peekByte()
		if !ok {
			return Token{}, reonerr.Lexicalf(s.row, s.col, "unexpected end of input after decimal point in a number")
		}
		if !isDigit(c) {
			return Token{}, reonerr.Lexicalf(s.row, s.col, "unexpected %q after decimal point in a number", string(c))
		}
		for {
			c, ok := s.peekByte()
			if !ok || !isDigit(c) {
				break
			}
			s.readByte()
		}
	}

	if c, ok := s.peekByte(); ok && (c == 'e' || c == 'E') {
		s.readByte()
		if c, ok := s.peekByte(); ok && (c == '+' || c == '-') {
			s.readByte()
		}
		c, ok := s.peekByte()
		if !ok {
			return Token{}, reonerr.Lexicalf(s.row, s.col, "unexpected end of input after exponent marker in a number")
		}
		if !isDigit(c) {
			return Token{}, reonerr.Lexicalf(s.row, s.col, "unexpected %q after exponent marker in a number", string(c))
		}
		for {
			c, ok := s.peekByte()
			if !ok || !isDigit(c) {
				break
			}
			s.readByte()
		}
	}

	lexeme := string(s.buf[start:s.pos])
	return s.tok(symbol.NewTerminal(ClassNumber, lexeme), row, col), nil
}

// scanString reads a quoted string (the opening quote has been peeked but
// not consumed), resolving escapes, then disambiguates keywords if the
// closing quote is immediately followed (past whitespace) by ':'.
func (s *Scanner) scanString(row, col int) (Token, error) {
	s.readByte() // consume opening quote
	var attr []byte

	for {
		c, ok := s.readByte()
		if !ok {
			return Token{}, reonerr.Lexicalf(s.row, s.col, "unexpected end of input reading a string")
		}
		if c == '"' {
			break
		}
		if c < 0x20 {
			return Token{}, reonerr.Lexicalf(s.row, s.col, "control byte 0x%02x in string", c)
		}
		if c != '\\' {
			attr = append(attr, c)
			continue
		}

		e, ok := s.readByte()
		if !ok {
			return Token{}, reonerr.Lexicalf(s.row, s.col, "unexpected end of input reading a string escape")
		}
		switch e {
		case '"':
			attr = append(attr, '"')
		case 'u':
			var hex [4]byte
			for i := 0; i < 4; i++ {
				h, ok := s.readByte()
				if !ok {
					return Token{}, reonerr.Lexicalf(s.row, s.col, "unexpected end of input reading a \\u escape")
				}
				if !isHexDigit(h) {
					return Token{}, reonerr.Lexicalf(s.row, s.col, "non-hex digit %q in a \\u escape", string(h))
				}
				hex[i] = h
			}
			v := hexVal(hex[0])<<12 | hexVal(hex[1])<<8 | hexVal(hex[2])<<4 | hexVal(hex[3])
			if v > 0xFF {
				attr = append(attr, byte(v>>8))
			}
			attr = append(attr, byte(v&0xFF))
		default:
			attr = append(attr, '\\', e)
		}
	}

	return s.resolveKeyword(string(attr), row, col)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

// resolveKeyword implements spec.md §4.1's keyword disambiguation: it
// peeks past whitespace after the closing quote, and if the next
// character is ':' (left unconsumed), classifies attr against the closed
// keyword vocabulary.
func (s *Scanner) resolveKeyword(attr string, row, col int) (Token, error) {
	s.skipSpace()
	c, ok := s.peekByte()
	if !ok || c != ':' {
		return s.tok(symbol.NewTerminal(ClassString, attr), row, col), nil
	}

	return s.tok(classifyKeyword(attr), row, col), nil
}

// classifyKeyword implements the keyword table of spec.md §4.1.
func classifyKeyword(attr string) symbol.Symbol {
	const repeatPrefix = "repeat "
	const ngRepeatPrefix = "non-greedy repeat "
	const groupPrefix = "group "

	if hasPrefix(attr, repeatPrefix) {
		return classifyRepeat(ClassRepeat, attr[len(repeatPrefix):])
	}
	if hasPrefix(attr, ngRepeatPrefix) {
		return classifyRepeat(ClassNonGreedyRepeat, attr[len(ngRepeatPrefix):])
	}
	if hasPrefix(attr, groupPrefix) {
		return symbol.NewTerminal(ClassNamedGroup, attr[len(groupPrefix):])
	}

	switch attr {
	case "set":
		return symbol.NewTerminal(ClassSet, "")
	case "!set", "negated set":
		return symbol.NewTerminal(ClassNegSet, "")
	case "alternatives":
		return symbol.NewTerminal(ClassAlternatives, "")
	case "group":
		return symbol.NewTerminal(ClassGroup, "")
	case "match group":
		return symbol.NewTerminal(ClassMatchGroup, "")
	case "comment":
		return symbol.NewTerminal(ClassComment, "")
	case "lookahead":
		return symbol.NewTerminal(ClassLookahead, "")
	case "!lookahead", "negative lookahead":
		return symbol.NewTerminal(ClassNegLookahead, "")
	case "lookbehind":
		return symbol.NewTerminal(ClassLookbehind, "")
	case "!lookbehind", "negative lookbehind":
		return symbol.NewTerminal(ClassNegLookbehind, "")
	case "if":
		return symbol.NewTerminal(ClassIf, "")
	case "then":
		return symbol.NewTerminal(ClassThen, "")
	case "else":
		return symbol.NewTerminal(ClassElse, "")
	}
	return symbol.NewTerminal(ClassString, attr)
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

type repeatShape int

const (
	shapeInvalid repeatShape = iota
	shapeAtomic
	shapeFixed
	shapeRange
)

// classifyRepeatSpec implements the "repeat spec classification" rules of
// spec.md §4.1 against a tail string with the "repeat "/"non-greedy
// repeat " prefix already stripped.
func classifyRepeatSpec(tail string) repeatShape {
	if tail == "*" || tail == "+" || tail == "?" {
		return shapeAtomic
	}
	if tail == "" {
		return shapeInvalid
	}

	if tail[0] == '-' {
		// -DIGITS
		if len(tail) == 1 {
			return shapeInvalid
		}
		for i := 1; i < len(tail); i++ {
			if !isDigit(tail[i]) {
				return shapeInvalid
			}
		}
		return shapeRange
	}

	// DIGITS ( '-' DIGITS? )?
	i := 0
	for i < len(tail) && isDigit(tail[i]) {
		i++
	}
	if i == 0 {
		return shapeInvalid
	}
	if i == len(tail) {
		return shapeFixed
	}
	if tail[i] != '-' {
		return shapeInvalid
	}
	i++
	for i < len(tail) {
		if !isDigit(tail[i]) {
			return shapeInvalid
		}
		i++
	}
	return shapeRange
}

// classifyRepeat applies the re-classification rule: a fixed count always
// becomes a "repeat" token (non-greedy on a fixed count is meaningless);
// an invalid shape falls back to a string token carrying the original,
// unstripped text.
func classifyRepeat(base, tail string) symbol.Symbol {
	switch classifyRepeatSpec(tail) {
	case shapeInvalid:
		return symbol.NewTerminal(ClassString, base+" "+tail)
	case shapeFixed:
		return symbol.NewTerminal(ClassRepeat, tail)
	default: // shapeAtomic, shapeRange
		return symbol.NewTerminal(base, tail)
	}
}

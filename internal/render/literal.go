package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind tags a literal Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is a parsed literal. Only the field matching Kind is meaningful.
type Value struct {
	Kind Kind
	Bool bool
	Num  float64
	Str  string
	Arr  []Value
	Obj  map[string]Value
	Keys []string // object keys in source order
}

// Get returns the named field of an object, or a null Value.
func (v Value) Get(key string) Value {
	if v.Kind != KindObject {
		return Value{}
	}
	return v.Obj[key]
}

// Text renders scalars as display text; arrays and objects yield "".
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	}
	return ""
}

// SyntaxError reports where a literal stopped making sense.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("literal syntax error at offset %d: %s", e.Offset, e.Msg)
}

// ParseLiteral parses a JavaScript-style data literal: arrays, objects with
// bare or quoted keys, quoted strings, numbers, true/false/null/undefined.
// Trailing commas and comments are accepted. Nothing is ever evaluated.
func ParseLiteral(src string) (Value, error) {
	p := &literalParser{src: src}
	p.skipSpace()
	v, err := p.value(0)
	if err != nil {
		return Value{}, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return Value{}, p.errorf("unexpected %q after value", p.src[p.pos])
	}
	return v, nil
}

const maxLiteralDepth = 64

type literalParser struct {
	src string
	pos int
}

func (p *literalParser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *literalParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *literalParser) skipSpace() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case strings.HasPrefix(p.src[p.pos:], "//"):
			end := strings.IndexByte(p.src[p.pos:], '\n')
			if end < 0 {
				p.pos = len(p.src)
			} else {
				p.pos += end + 1
			}
		case strings.HasPrefix(p.src[p.pos:], "/*"):
			end := strings.Index(p.src[p.pos+2:], "*/")
			if end < 0 {
				p.pos = len(p.src)
			} else {
				p.pos += end + 4
			}
		default:
			return
		}
	}
}

func (p *literalParser) value(depth int) (Value, error) {
	if depth > maxLiteralDepth {
		return Value{}, p.errorf("nesting too deep")
	}
	switch c := p.peek(); {
	case c == 0:
		return Value{}, p.errorf("unexpected end of input")
	case c == '[':
		return p.array(depth)
	case c == '{':
		return p.object(depth)
	case c == '"' || c == '\'' || c == '`':
		s, err := p.str()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindString, Str: s}, nil
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.number()
	case isIdentStart(rune(c)):
		start := p.pos
		word := p.ident()
		switch word {
		case "true":
			return Value{Kind: KindBool, Bool: true}, nil
		case "false":
			return Value{Kind: KindBool}, nil
		case "null", "undefined":
			return Value{Kind: KindNull}, nil
		}
		p.pos = start
		return Value{}, p.errorf("identifier %q is not a literal", word)
	default:
		return Value{}, p.errorf("unexpected %q", c)
	}
}

func (p *literalParser) array(depth int) (Value, error) {
	p.pos++ // [
	out := Value{Kind: KindArray, Arr: []Value{}}
	for {
		p.skipSpace()
		if p.peek() == ']' {
			p.pos++
			return out, nil
		}
		v, err := p.value(depth + 1)
		if err != nil {
			return Value{}, err
		}
		out.Arr = append(out.Arr, v)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return out, nil
		case 0:
			return Value{}, p.errorf("unterminated array")
		default:
			return Value{}, p.errorf("expected ',' or ']' in array, got %q", p.peek())
		}
	}
}

func (p *literalParser) object(depth int) (Value, error) {
	p.pos++ // {
	out := Value{Kind: KindObject, Obj: map[string]Value{}}
	for {
		p.skipSpace()
		if p.peek() == '}' {
			p.pos++
			return out, nil
		}

		key, err := p.key()
		if err != nil {
			return Value{}, err
		}
		p.skipSpace()
		if p.peek() != ':' {
			return Value{}, p.errorf("expected ':' after key %q", key)
		}
		p.pos++
		p.skipSpace()

		v, err := p.value(depth + 1)
		if err != nil {
			return Value{}, err
		}
		if _, dup := out.Obj[key]; !dup {
			out.Keys = append(out.Keys, key)
		}
		out.Obj[key] = v

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return out, nil
		case 0:
			return Value{}, p.errorf("unterminated object")
		default:
			return Value{}, p.errorf("expected ',' or '}' in object, got %q", p.peek())
		}
	}
}

func (p *literalParser) key() (string, error) {
	c := p.peek()
	switch {
	case c == '"' || c == '\'' || c == '`':
		return p.str()
	case c >= '0' && c <= '9':
		v, err := p.number()
		if err != nil {
			return "", err
		}
		return v.Text(), nil
	case isIdentStart(rune(c)):
		return p.ident(), nil
	case c == 0:
		return "", p.errorf("unterminated object")
	}
	return "", p.errorf("invalid object key start %q", c)
}

func (p *literalParser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !isIdentPart(r) {
			break
		}
		p.pos += size
	}
	return p.src[start:p.pos]
}

func (p *literalParser) number() (Value, error) {
	start := p.pos
	if c := p.peek(); c == '-' || c == '+' {
		p.pos++
	}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '_' ||
			((c == '-' || c == '+') && (p.src[p.pos-1] == 'e' || p.src[p.pos-1] == 'E')) {
			p.pos++
			continue
		}
		break
	}
	text := strings.ReplaceAll(p.src[start:p.pos], "_", "")
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.pos = start
		return Value{}, p.errorf("invalid number %q", text)
	}
	return Value{Kind: KindNumber, Num: n}, nil
}

// str reads a single, double or backtick quoted string.
func (p *literalParser) str() (string, error) {
	quote := p.src[p.pos]
	start := p.pos
	p.pos++

	var b strings.Builder
	for {
		if p.pos >= len(p.src) {
			p.pos = start
			return "", p.errorf("unterminated string")
		}
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\n' && quote != '`':
			return "", p.errorf("newline in string")
		case c == '$' && quote == '`' && strings.HasPrefix(p.src[p.pos:], "${"):
			return "", p.errorf("template interpolation is not allowed")
		case c == '\\':
			if err := p.escape(&b); err != nil {
				return "", err
			}
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
}

func (p *literalParser) escape(b *strings.Builder) error {
	p.pos++ // backslash
	if p.pos >= len(p.src) {
		return p.errorf("unterminated escape")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '0':
		b.WriteByte(0)
	case '\n':
		// line continuation
	case '\r':
		if p.peek() == '\n' {
			p.pos++
		}
	case 'x':
		if p.pos+2 > len(p.src) {
			return p.errorf("short \\x escape")
		}
		n, err := strconv.ParseUint(p.src[p.pos:p.pos+2], 16, 8)
		if err != nil {
			return p.errorf("bad \\x escape")
		}
		b.WriteRune(rune(n))
		p.pos += 2
	case 'u':
		r, err := p.unicodeEscape()
		if err != nil {
			return err
		}
		b.WriteRune(r)
	default:
		b.WriteByte(c)
	}
	return nil
}

func (p *literalParser) unicodeEscape() (rune, error) {
	if p.peek() == '{' {
		end := strings.IndexByte(p.src[p.pos:], '}')
		if end < 0 {
			return 0, p.errorf("unterminated \\u{} escape")
		}
		n, err := strconv.ParseUint(p.src[p.pos+1:p.pos+end], 16, 32)
		if err != nil || n > unicode.MaxRune {
			return 0, p.errorf("bad \\u{} escape")
		}
		p.pos += end + 1
		return rune(n), nil
	}
	if p.pos+4 > len(p.src) {
		return 0, p.errorf("short \\u escape")
	}
	n, err := strconv.ParseUint(p.src[p.pos:p.pos+4], 16, 16)
	if err != nil {
		return 0, p.errorf("bad \\u escape")
	}
	p.pos += 4
	r := rune(n)
	// surrogate pair
	if r >= 0xD800 && r < 0xDC00 && strings.HasPrefix(p.src[p.pos:], "\\u") && p.pos+6 <= len(p.src) {
		if lo, err := strconv.ParseUint(p.src[p.pos+2:p.pos+6], 16, 16); err == nil && lo >= 0xDC00 && lo < 0xE000 {
			p.pos += 6
			return (r-0xD800)<<10 + (rune(lo) - 0xDC00) + 0x10000, nil
		}
	}
	return r, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

package render

import (
	"fmt"
	"strings"
)

// attr is one attribute of a component tag: either a quoted string or the
// raw text between the braces of a {expression}.
type attr struct {
	value  string
	isExpr bool
}

// parseTag reads `<Name attr="x" other={...} />` and returns the tag name and
// its attributes. Children and closing tags after the first '>' are ignored.
func parseTag(src string) (string, map[string]attr, error) {
	s := &tagScanner{src: src}
	s.skipSpace()
	if s.peek() != '<' {
		return "", nil, fmt.Errorf("component must start with '<'")
	}
	s.pos++
	name := s.name()
	if name == "" {
		return "", nil, fmt.Errorf("missing component name")
	}

	attrs := map[string]attr{}
	for {
		s.skipSpace()
		switch {
		case s.pos >= len(s.src):
			// an unclosed tag is accepted once its attributes are complete
			return name, attrs, nil
		case strings.HasPrefix(s.src[s.pos:], "/>"), s.peek() == '>':
			return name, attrs, nil
		}

		key := s.name()
		if key == "" {
			return name, nil, fmt.Errorf("unexpected %q at offset %d", s.peek(), s.pos)
		}
		s.skipSpace()
		if s.peek() != '=' {
			attrs[key] = attr{value: "true"}
			continue
		}
		s.pos++
		s.skipSpace()

		switch c := s.peek(); c {
		case '"', '\'':
			end := strings.IndexByte(s.src[s.pos+1:], c)
			if end < 0 {
				return name, nil, fmt.Errorf("unterminated attribute %q", key)
			}
			attrs[key] = attr{value: s.src[s.pos+1 : s.pos+1+end]}
			s.pos += end + 2
		case '{':
			end, err := matchBrace(s.src, s.pos)
			if err != nil {
				return name, nil, fmt.Errorf("attribute %q: %w", key, err)
			}
			attrs[key] = attr{value: s.src[s.pos+1 : end], isExpr: true}
			s.pos = end + 1
		default:
			return name, nil, fmt.Errorf("attribute %q has no value", key)
		}
	}
}

// matchBrace returns the index of the '}' closing the '{' at open, skipping
// over quoted strings, comments and nested braces.
func matchBrace(src string, open int) (int, error) {
	depth := 0
	for i := open; i < len(src); i++ {
		switch c := src[i]; c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		case '"', '\'', '`':
			j := i + 1
			for ; j < len(src) && src[j] != c; j++ {
				if src[j] == '\\' {
					j++
				}
			}
			if j >= len(src) {
				return 0, fmt.Errorf("unterminated string")
			}
			i = j
		case '/':
			switch {
			case strings.HasPrefix(src[i:], "//"):
				end := strings.IndexByte(src[i:], '\n')
				if end < 0 {
					return 0, fmt.Errorf("unterminated expression")
				}
				i += end
			case strings.HasPrefix(src[i:], "/*"):
				end := strings.Index(src[i+2:], "*/")
				if end < 0 {
					return 0, fmt.Errorf("unterminated comment")
				}
				i += end + 3
			}
		}
	}
	return 0, fmt.Errorf("unterminated expression")
}

type tagScanner struct {
	src string
	pos int
}

func (s *tagScanner) peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *tagScanner) skipSpace() {
	for s.pos < len(s.src) && strings.IndexByte(" \t\r\n", s.src[s.pos]) >= 0 {
		s.pos++
	}
}

func (s *tagScanner) name() string {
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '_' || c == '-' || c == ':' || c == '.' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			s.pos++
			continue
		}
		break
	}
	return s.src[start:s.pos]
}

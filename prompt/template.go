package prompt

import (
	"fmt"
	"strings"
)

// segment is one parsed piece of a template: either literal text or a
// variable reference.
type segment struct {
	text  string
	isVar bool
}

// Template is a compiled prompt template using {variable} syntax.
// Parsing happens once at construction; Render is a pure single-pass
// substitution. Templates are immutable and safe for concurrent use.
type Template struct {
	source   string
	segments []segment
	vars     []string
}

// New parses the template text and returns a compiled Template.
// Returns ErrEmpty for an empty string and ErrParse for malformed
// placeholder syntax.
func New(text string) (*Template, error) {
	if text == "" {
		return nil, ErrEmpty
	}
	segments, err := parse(text)
	if err != nil {
		return nil, err
	}
	return &Template{
		source:   text,
		segments: segments,
		vars:     variableNames(segments),
	}, nil
}

// MustNew is like New but panics on error.
// Use for templates known valid at compile time.
func MustNew(text string) *Template {
	t, err := New(text)
	if err != nil {
		panic(fmt.Sprintf("prompt.MustNew(%q): %v", text, err))
	}
	return t
}

// Source returns the original template text.
func (t *Template) Source() string {
	return t.source
}

// Variables returns the distinct variable names the template references,
// in first-appearance order.
func (t *Template) Variables() []string {
	out := make([]string, len(t.vars))
	copy(out, t.vars)
	return out
}

// Render substitutes every placeholder with the corresponding value from
// variables. Returns ErrMissingVariable if any referenced placeholder has
// no entry. Extra variables are silently ignored. Values are formatted
// with fmt.Sprint.
func (t *Template) Render(variables map[string]any) (string, error) {
	var b strings.Builder
	b.Grow(len(t.source))
	for _, seg := range t.segments {
		if !seg.isVar {
			b.WriteString(seg.text)
			continue
		}
		val, ok := variables[seg.text]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingVariable, seg.text)
		}
		b.WriteString(fmt.Sprint(val))
	}
	return b.String(), nil
}

// parse splits template text into literal and variable segments.
// {{ and }} escape to literal braces.
func parse(text string) ([]segment, error) {
	var segments []segment
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(text); {
		switch text[i] {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				literal.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed placeholder at offset %d", ErrParse, i)
			}
			name := text[i+1 : i+1+end]
			if !isIdentifier(name) {
				return nil, fmt.Errorf("%w: invalid placeholder name %q", ErrParse, name)
			}
			flush()
			segments = append(segments, segment{text: name, isVar: true})
			i += end + 2
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				literal.WriteByte('}')
				i += 2
				continue
			}
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, '}', i)
		default:
			literal.WriteByte(text[i])
			i++
		}
	}
	flush()
	return segments, nil
}

// isIdentifier checks if a string is a valid placeholder name.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		if i == 0 && ch >= '0' && ch <= '9' {
			return false
		}
		isLower := ch >= 'a' && ch <= 'z'
		isUpper := ch >= 'A' && ch <= 'Z'
		isDigit := ch >= '0' && ch <= '9'
		if !isLower && !isUpper && !isDigit && ch != '_' {
			return false
		}
	}
	return true
}

// variableNames collects distinct variable names in first-appearance order.
func variableNames(segments []segment) []string {
	seen := make(map[string]bool)
	var names []string
	for _, seg := range segments {
		if seg.isVar && !seen[seg.text] {
			seen[seg.text] = true
			names = append(names, seg.text)
		}
	}
	return names
}

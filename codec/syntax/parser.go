package syntax

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// lineScanner walks the input text one (already-trimmed) line at a time.
// Blank lines are skipped. This mirrors the teacher's pattern of plain
// value-returning helpers over a cursor, here a slice index instead of a
// byte offset.
type lineScanner struct {
	lines []string
	pos   int
}

func newLineScanner(text string) *lineScanner {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimSpace(l))
	}
	return &lineScanner{lines: lines}
}

func (s *lineScanner) next() (string, bool) {
	for s.pos < len(s.lines) {
		line := s.lines[s.pos]
		s.pos++
		if line == "" {
			continue
		}
		return line, true
	}
	return "", false
}

// ParseForest parses the text format of spec.md §4.6 into an ordered
// forest of top-level elements (normally "nalu" Nodes). It tolerates
// arbitrary leading whitespace, blank lines, and mixed indentation; the
// parser trims leading whitespace per line rather than enforcing a fixed
// indent.
func ParseForest(text string) ([]Element, error) {
	s := newLineScanner(text)
	return parseElements(s)
}

func parseElements(s *lineScanner) ([]Element, error) {
	var ret []Element
	for {
		line, ok := s.next()
		if !ok {
			return ret, nil
		}
		if line == "}" {
			return ret, nil
		}
		if strings.HasSuffix(line, "{") {
			name := strings.TrimSpace(strings.TrimSuffix(line, "{"))
			if name == "" {
				return nil, errors.Errorf("syntax: malformed node header %q", line)
			}
			children, err := parseElements(s)
			if err != nil {
				return nil, err
			}
			ret = append(ret, &Node{Name: name, Children: children})
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			return nil, errors.Errorf("syntax: malformed line %q (no ':')", line)
		}
		name := strings.TrimSpace(line[:idx])
		val := strings.TrimSpace(line[idx+1:])
		if strings.HasPrefix(val, `"`) && strings.HasSuffix(val, `"`) {
			data, err := parseHexPayload(val[1 : len(val)-1])
			if err != nil {
				return nil, errors.Wrapf(err, "syntax: payload %q", name)
			}
			ret = append(ret, &Payload{Name: name, Data: data})
			continue
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "syntax: field %q has malformed value %q", name, val)
		}
		ret = append(ret, &Field{Name: name, Value: int32(n)})
	}
}

func parseHexPayload(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	tokens := strings.Split(s, " ")
	data := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		b, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex byte %q", tok)
		}
		data = append(data, byte(b))
	}
	return data, nil
}

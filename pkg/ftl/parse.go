package ftl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"
)

var (
	entryRe      = regexp.MustCompile(`^(-?)([A-Za-z][A-Za-z0-9_-]*)[ \t]*=[ \t]*(.*)$`)
	attributeRe  = regexp.MustCompile(`^[ \t]+\.([A-Za-z][A-Za-z0-9_-]*)[ \t]*=[ \t]*(.*)$`)
	identifierRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

// Parse parses a locale file.
func Parse(data []byte) (*Resource, error) {
	return ParseReader(bytes.NewReader(data))
}

// block accumulates the raw lines of a value or attribute.
type block struct {
	line  int
	first string
	rest  []string
}

type parser struct {
	res   *Resource
	entry *Entry
	attr  string
	cur   *block
}

// ParseReader parses a locale file from r.
func ParseReader(r io.Reader) (*Resource, error) {
	p := &parser{res: newResource()}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		if err := p.line(lineNo, line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read locale file: %w", err)
	}
	if err := p.finishEntry(); err != nil {
		return nil, err
	}
	return p.res, nil
}

func (p *parser) line(n int, line string) error {
	switch {
	case strings.TrimSpace(line) == "":
		if p.cur != nil {
			p.cur.rest = append(p.cur.rest, "")
		}
		return nil
	case strings.HasPrefix(line, "#"):
		return p.finishEntry()
	case line[0] == ' ' || line[0] == '\t':
		if p.entry == nil {
			return &ParseError{Line: n, Msg: "indented line outside of an entry"}
		}
		if m := attributeRe.FindStringSubmatch(line); m != nil {
			if err := p.finishBlock(); err != nil {
				return err
			}
			if _, dup := p.entry.Attribute(m[1]); dup {
				return &ParseError{Line: n, Msg: fmt.Sprintf("duplicate attribute %q on %q", m[1], p.entry.displayID())}
			}
			p.attr = m[1]
			p.cur = &block{line: n, first: m[2]}
			return nil
		}
		if p.cur == nil {
			return &ParseError{Line: n, Msg: "continuation line without a value"}
		}
		p.cur.rest = append(p.cur.rest, line)
		return nil
	}

	m := entryRe.FindStringSubmatch(line)
	if m == nil {
		return &ParseError{Line: n, Msg: fmt.Sprintf("expected an entry, got %q", line)}
	}
	if err := p.finishEntry(); err != nil {
		return err
	}
	p.entry = &Entry{ID: m[2], Term: m[1] == "-", Line: n}
	p.attr = ""
	p.cur = &block{line: n, first: m[3]}
	return nil
}

func (p *parser) finishBlock() error {
	if p.cur == nil {
		return nil
	}
	b := p.cur
	p.cur = nil

	pattern, err := parsePattern(joinBlock(b), b.line)
	if err != nil {
		return err
	}
	if p.attr == "" {
		p.entry.Value = pattern
		return nil
	}
	if pattern.IsEmpty() {
		return &ParseError{Line: b.line, Msg: fmt.Sprintf("attribute %q on %q has no value", p.attr, p.entry.displayID())}
	}
	p.entry.Attributes = append(p.entry.Attributes, Attribute{Name: p.attr, Value: pattern, Line: b.line})
	return nil
}

func (p *parser) finishEntry() error {
	if err := p.finishBlock(); err != nil {
		return err
	}
	if p.entry == nil {
		return nil
	}
	e := p.entry
	p.entry = nil
	p.attr = ""

	if len(e.Value) == 0 && len(e.Attributes) == 0 {
		return &ParseError{Line: e.Line, Msg: fmt.Sprintf("entry %q has neither a value nor attributes", e.displayID())}
	}
	if e.Term && len(e.Value) == 0 {
		return &ParseError{Line: e.Line, Msg: fmt.Sprintf("term %q must have a value", e.displayID())}
	}
	return p.res.add(e)
}

// joinBlock strips the common indentation of continuation lines and drops
// trailing blank lines.
func joinBlock(b *block) string {
	rest := b.rest
	for len(rest) > 0 && rest[len(rest)-1] == "" {
		rest = rest[:len(rest)-1]
	}

	indent := -1
	for _, l := range rest {
		if l == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeftFunc(l, unicode.IsSpace))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	lines := make([]string, 0, len(rest)+1)
	first := strings.TrimRightFunc(b.first, unicode.IsSpace)
	if first != "" {
		lines = append(lines, first)
	}
	for _, l := range rest {
		if l == "" {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			continue
		}
		lines = append(lines, strings.TrimRightFunc(l[indent:], unicode.IsSpace))
	}
	return strings.Join(lines, "\n")
}

func parsePattern(src string, line int) (Pattern, error) {
	var (
		out  Pattern
		text strings.Builder
	)
	lineAt := func(offset int) int {
		return line + strings.Count(src[:offset], "\n")
	}

	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '}':
			return nil, &ParseError{Line: lineAt(i), Msg: "unbalanced '}'"}
		case '{':
			end, err := placeableEnd(src, i)
			if err != nil {
				return nil, &ParseError{Line: lineAt(i), Msg: err.Error()}
			}
			el, err := parsePlaceable(strings.TrimSpace(src[i+1 : end]))
			if err != nil {
				return nil, &ParseError{Line: lineAt(i), Msg: err.Error()}
			}
			if t, ok := el.(Text); ok {
				text.WriteString(string(t))
			} else {
				if text.Len() > 0 {
					out = append(out, Text(text.String()))
					text.Reset()
				}
				out = append(out, el)
			}
			i = end
		default:
			text.WriteByte(c)
		}
	}
	if text.Len() > 0 {
		out = append(out, Text(text.String()))
	}
	return out, nil
}

// placeableEnd returns the index of the '}' closing the placeable opened at
// start, skipping over string literals.
func placeableEnd(src string, start int) (int, error) {
	inString := false
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			if inString {
				i++
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				return 0, fmt.Errorf("nested placeables are not supported")
			}
		case '}':
			if !inString {
				return i, nil
			}
		case '\n':
			if inString {
				return 0, fmt.Errorf("unterminated string literal")
			}
		}
	}
	return 0, fmt.Errorf("unclosed placeable")
}

func parsePlaceable(expr string) (Element, error) {
	switch {
	case expr == "":
		return nil, fmt.Errorf("empty placeable")
	case strings.Contains(expr, "->"):
		return nil, fmt.Errorf("select expressions are not supported")
	case strings.HasPrefix(expr, "$"):
		name := expr[1:]
		if !identifierRe.MatchString(name) {
			return nil, fmt.Errorf("invalid variable name %q", name)
		}
		return Variable(name), nil
	case strings.HasPrefix(expr, `"`):
		return parseStringLiteral(expr)
	}

	ref := Reference{}
	if strings.HasPrefix(expr, "-") {
		ref.Term = true
		expr = expr[1:]
	}
	id, attr, hasAttr := strings.Cut(expr, ".")
	if !identifierRe.MatchString(id) || (hasAttr && !identifierRe.MatchString(attr)) {
		return nil, fmt.Errorf("unsupported placeable %q", expr)
	}
	ref.ID = id
	ref.Attr = attr
	return ref, nil
}

func parseStringLiteral(expr string) (Element, error) {
	if len(expr) < 2 || !strings.HasSuffix(expr, `"`) {
		return nil, fmt.Errorf("malformed string literal %s", expr)
	}
	body := expr[1 : len(expr)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			if c == '"' {
				return nil, fmt.Errorf("malformed string literal %s", expr)
			}
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return nil, fmt.Errorf("dangling escape in %s", expr)
		}
		switch body[i] {
		case '\\', '"':
			b.WriteByte(body[i])
		default:
			return nil, fmt.Errorf("unknown escape \\%c in %s", body[i], expr)
		}
	}
	return Text(b.String()), nil
}

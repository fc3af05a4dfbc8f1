package ftl

import (
	"fmt"
	"sort"
	"strings"
)

// Element is one piece of a Pattern: Text, Variable or Reference.
type Element interface {
	element()
}

// Text is literal text.
type Text string

// Variable is a placeholder such as {$universe_name}.
type Variable string

// Reference points at another message, one of its attributes, or a term.
type Reference struct {
	ID   string
	Attr string
	Term bool
}

func (Text) element()      {}
func (Variable) element()  {}
func (Reference) element() {}

func (r Reference) String() string {
	id := r.ID
	if r.Term {
		id = "-" + id
	}
	if r.Attr != "" {
		id += "." + r.Attr
	}
	return id
}

// Pattern is the parsed value of a message or attribute.
type Pattern []Element

// IsEmpty reports whether the pattern renders to nothing.
func (p Pattern) IsEmpty() bool {
	for _, el := range p {
		if t, ok := el.(Text); ok && strings.TrimSpace(string(t)) == "" {
			continue
		}
		return false
	}
	return true
}

// Variables returns the sorted, de-duplicated placeholder names.
func (p Pattern) Variables() []string {
	seen := make(map[string]struct{})
	for _, el := range p {
		if v, ok := el.(Variable); ok {
			seen[string(v)] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// References returns the references in order of appearance.
func (p Pattern) References() []Reference {
	var refs []Reference
	for _, el := range p {
		if r, ok := el.(Reference); ok {
			refs = append(refs, r)
		}
	}
	return refs
}

// String renders the pattern back to source form.
func (p Pattern) String() string {
	var b strings.Builder
	for _, el := range p {
		switch v := el.(type) {
		case Text:
			b.WriteString(strings.NewReplacer("{", `{"{"}`, "}", `{"}"}`).Replace(string(v)))
		case Variable:
			fmt.Fprintf(&b, "{$%s}", string(v))
		case Reference:
			fmt.Fprintf(&b, "{ %s }", v.String())
		}
	}
	return b.String()
}

// templateEscaper quotes every literal brace so that text next to a
// placeholder never forms a delimiter.
var templateEscaper = strings.NewReplacer("{", `{{"{"}}`, "}", `{{"}"}}`)

// Template converts the pattern to text/template source, the format used by
// go-i18n. References must be resolved first; leftovers are kept verbatim.
func (p Pattern) Template() string {
	var b strings.Builder
	for _, el := range p {
		switch v := el.(type) {
		case Text:
			b.WriteString(templateEscaper.Replace(string(v)))
		case Variable:
			name := string(v)
			if strings.Contains(name, "-") {
				fmt.Fprintf(&b, "{{index . %q}}", name)
			} else {
				fmt.Fprintf(&b, "{{.%s}}", name)
			}
		case Reference:
			fmt.Fprintf(&b, "{ %s }", v.String())
		}
	}
	return b.String()
}

// Format substitutes variables from args. Missing variables are passed to
// missing, whose result is used instead; a nil missing keeps {$name}.
func (p Pattern) Format(args map[string]string, missing func(name string) string) string {
	var b strings.Builder
	for _, el := range p {
		switch v := el.(type) {
		case Text:
			b.WriteString(string(v))
		case Variable:
			if val, ok := args[string(v)]; ok {
				b.WriteString(val)
			} else if missing != nil {
				b.WriteString(missing(string(v)))
			} else {
				fmt.Fprintf(&b, "{$%s}", string(v))
			}
		case Reference:
			fmt.Fprintf(&b, "{ %s }", v.String())
		}
	}
	return b.String()
}

// compact merges adjacent text elements.
func compact(p Pattern) Pattern {
	out := make(Pattern, 0, len(p))
	for _, el := range p {
		if t, ok := el.(Text); ok {
			if t == "" {
				continue
			}
			if n := len(out); n > 0 {
				if prev, ok := out[n-1].(Text); ok {
					out[n-1] = prev + t
					continue
				}
			}
		}
		out = append(out, el)
	}
	return out
}

// Package ftl reads the subset of the Fluent syntax used by the bot's locale
// files: messages, terms, attributes, comments and simple placeables.
//
// A file looks like:
//
//	# comment
//	create_road__success = Road created
//	    .title = Success
//	    .message = The road between {$place_one} and {$place_two} is open.
//
//	-brand = RPBot
//	start_message = Welcome to { -brand }!
//
// Select expressions, functions and number literals are rejected: a pattern
// is plain text interleaved with variables and references.
package ftl

import (
	"fmt"
	"sort"
)

// Entry is a message or a term together with its attributes.
type Entry struct {
	ID         string
	Term       bool
	Value      Pattern
	Attributes []Attribute
	Line       int
}

// Attribute is a named sub-field of an entry, e.g. ".title".
type Attribute struct {
	Name  string
	Value Pattern
	Line  int
}

// Attribute returns the pattern of the named attribute.
func (e *Entry) Attribute(name string) (Pattern, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

// AttributeNames returns the attribute names in declaration order.
func (e *Entry) AttributeNames() []string {
	names := make([]string, 0, len(e.Attributes))
	for _, a := range e.Attributes {
		names = append(names, a.Name)
	}
	return names
}

// Resource is one parsed locale file.
type Resource struct {
	entries  []*Entry
	messages map[string]*Entry
	terms    map[string]*Entry
}

func newResource() *Resource {
	return &Resource{
		messages: make(map[string]*Entry),
		terms:    make(map[string]*Entry),
	}
}

func (r *Resource) add(e *Entry) error {
	index := r.messages
	if e.Term {
		index = r.terms
	}
	if prev, ok := index[e.ID]; ok {
		return &ParseError{Line: e.Line, Msg: fmt.Sprintf("duplicate entry %q (first defined on line %d)", e.displayID(), prev.Line)}
	}
	index[e.ID] = e
	r.entries = append(r.entries, e)
	return nil
}

// Entries returns messages and terms in file order.
func (r *Resource) Entries() []*Entry {
	return r.entries
}

// Messages returns the non-term entries in file order.
func (r *Resource) Messages() []*Entry {
	out := make([]*Entry, 0, len(r.messages))
	for _, e := range r.entries {
		if !e.Term {
			out = append(out, e)
		}
	}
	return out
}

// Message looks up a message by id.
func (r *Resource) Message(id string) (*Entry, bool) {
	e, ok := r.messages[id]
	return e, ok
}

// Term looks up a term by id, without the leading dash.
func (r *Resource) Term(id string) (*Entry, bool) {
	e, ok := r.terms[id]
	return e, ok
}

// MessageIDs returns the sorted message ids.
func (r *Resource) MessageIDs() []string {
	ids := make([]string, 0, len(r.messages))
	for id := range r.messages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (e *Entry) displayID() string {
	if e.Term {
		return "-" + e.ID
	}
	return e.ID
}

// ParseError reports a syntax error with its 1-based line number.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

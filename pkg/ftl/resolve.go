package ftl

import (
	"fmt"
	"strings"
)

// ReferenceError reports a reference that cannot be inlined.
type ReferenceError struct {
	Entry string
	Ref   Reference
	Cycle []string
}

func (e *ReferenceError) Error() string {
	if len(e.Cycle) > 0 {
		return fmt.Sprintf("%s: reference cycle %s", e.Entry, strings.Join(e.Cycle, " -> "))
	}
	return fmt.Sprintf("%s: unknown reference %q", e.Entry, e.Ref.String())
}

// Resolve inlines every message and term reference so that patterns only
// contain text and variables. Variables of referenced entries become
// variables of the referencing entry.
func (r *Resource) Resolve() error {
	res := &resolver{
		res:  r,
		done: make(map[string]Pattern),
	}
	for _, e := range r.entries {
		v, err := res.pattern(e.displayID(), e.Value, nil)
		if err != nil {
			return err
		}
		e.Value = v
		for i := range e.Attributes {
			a := &e.Attributes[i]
			v, err := res.pattern(e.displayID()+"."+a.Name, a.Value, nil)
			if err != nil {
				return err
			}
			a.Value = v
		}
	}
	return nil
}

type resolver struct {
	res  *Resource
	done map[string]Pattern
}

func (r *resolver) pattern(owner string, p Pattern, stack []string) (Pattern, error) {
	if len(p.References()) == 0 {
		return p, nil
	}
	stack = append(stack, owner)
	out := make(Pattern, 0, len(p))
	for _, el := range p {
		ref, ok := el.(Reference)
		if !ok {
			out = append(out, el)
			continue
		}
		inlined, err := r.reference(owner, ref, stack)
		if err != nil {
			return nil, err
		}
		out = append(out, inlined...)
	}
	return compact(out), nil
}

func (r *resolver) reference(owner string, ref Reference, stack []string) (Pattern, error) {
	key := ref.String()
	if p, ok := r.done[key]; ok {
		return p, nil
	}
	for i, s := range stack {
		if s == key {
			cycle := append(append([]string{}, stack[i:]...), key)
			return nil, &ReferenceError{Entry: stack[0], Ref: ref, Cycle: cycle}
		}
	}

	var (
		target *Entry
		ok     bool
	)
	if ref.Term {
		target, ok = r.res.Term(ref.ID)
	} else {
		target, ok = r.res.Message(ref.ID)
	}
	if !ok {
		return nil, &ReferenceError{Entry: owner, Ref: ref}
	}

	src := target.Value
	if ref.Attr != "" {
		src, ok = target.Attribute(ref.Attr)
		if !ok {
			return nil, &ReferenceError{Entry: owner, Ref: ref}
		}
	} else if len(src) == 0 {
		return nil, &ReferenceError{Entry: owner, Ref: ref}
	}

	p, err := r.pattern(key, src, stack)
	if err != nil {
		return nil, err
	}
	r.done[key] = p
	return p, nil
}

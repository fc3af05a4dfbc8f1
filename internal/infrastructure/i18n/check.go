package i18n

import (
	"fmt"
	"sort"
	"strings"
)

type IssueKind string

const (
	// IssueMissingKey: a message present in another locale is absent.
	IssueMissingKey IssueKind = "missing_key"
	// IssueMissingAttribute: the message exists but lacks a sub-field.
	IssueMissingAttribute IssueKind = "missing_attribute"
	// IssuePlaceholderMismatch: the key uses a different set of placeholders.
	IssuePlaceholderMismatch IssueKind = "placeholder_mismatch"
)

// Issue is one inconsistency between two locales.
type Issue struct {
	Kind      IssueKind
	Key       string
	Locale    string
	Reference string
	Missing   []string
	Extra     []string
}

func (i Issue) String() string {
	switch i.Kind {
	case IssuePlaceholderMismatch:
		var parts []string
		if len(i.Missing) > 0 {
			parts = append(parts, "missing "+formatVars(i.Missing))
		}
		if len(i.Extra) > 0 {
			parts = append(parts, "unexpected "+formatVars(i.Extra))
		}
		return fmt.Sprintf("%s: %s: %s (compared to %s)", i.Locale, i.Key, strings.Join(parts, ", "), i.Reference)
	default:
		return fmt.Sprintf("%s: %s: %s (defined in %s)", i.Locale, i.Key, strings.ReplaceAll(string(i.Kind), "_", " "), i.Reference)
	}
}

func formatVars(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "{$" + n + "}"
	}
	return strings.Join(out, " ")
}

// Report is the result of Check.
type Report struct {
	Locales []string
	Keys    int
	Issues  []Issue
}

// OK reports whether all locales are consistent.
func (r Report) OK() bool { return len(r.Issues) == 0 }

// Check verifies that every key of every locale exists in all the others
// with the same placeholder names. Terms are private to a file and are
// not compared; placeholders brought in by references count.
func Check(cs *Catalogs) Report {
	locales := cs.Locales()

	present := make(map[string]map[string]bool)
	for _, l := range locales {
		c, _ := cs.Get(l)
		for _, k := range c.Keys() {
			if present[k] == nil {
				present[k] = make(map[string]bool)
			}
			present[k][l] = true
		}
	}
	keys := make([]string, 0, len(present))
	for k := range present {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	report := Report{Locales: locales, Keys: len(keys)}
	for _, key := range keys {
		ref := referenceLocale(locales, present[key])
		refCatalog, _ := cs.Get(ref)
		refPattern, _ := refCatalog.Pattern(key)
		refVars := refPattern.Variables()

		for _, l := range locales {
			if l == ref {
				continue
			}
			c, _ := cs.Get(l)
			if !present[key][l] {
				report.Issues = append(report.Issues, Issue{
					Kind:      missingKind(c, key),
					Key:       key,
					Locale:    l,
					Reference: ref,
				})
				continue
			}
			p, _ := c.Pattern(key)
			missing, extra := diff(refVars, p.Variables())
			if len(missing) > 0 || len(extra) > 0 {
				report.Issues = append(report.Issues, Issue{
					Kind:      IssuePlaceholderMismatch,
					Key:       key,
					Locale:    l,
					Reference: ref,
					Missing:   missing,
					Extra:     extra,
				})
			}
		}
	}
	return report
}

// referenceLocale picks the first locale, in Locales order, defining the key.
func referenceLocale(locales []string, has map[string]bool) string {
	for _, l := range locales {
		if has[l] {
			return l
		}
	}
	return ""
}

func missingKind(c *Catalog, key string) IssueKind {
	id, _, hasAttr := strings.Cut(key, ".")
	if hasAttr {
		if _, ok := c.Resource.Message(id); ok {
			return IssueMissingAttribute
		}
	}
	return IssueMissingKey
}

// diff returns the names of want absent from got, and of got absent from want.
// Both inputs are sorted.
func diff(want, got []string) (missing, extra []string) {
	i, j := 0, 0
	for i < len(want) && j < len(got) {
		switch {
		case want[i] == got[j]:
			i++
			j++
		case want[i] < got[j]:
			missing = append(missing, want[i])
			i++
		default:
			extra = append(extra, got[j])
			j++
		}
	}
	missing = append(missing, want[i:]...)
	extra = append(extra, got[j:]...)
	return missing, extra
}

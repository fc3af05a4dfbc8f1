package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"rpbot/pkg/ftl"
)

// BaseLocale is the catalog every other locale falls back to.
const BaseLocale = "en-US"

//go:embed locales/*.ftl
var localeFS embed.FS

// ErrMissingBaseLocale is returned when a catalog directory has no base locale file.
var ErrMissingBaseLocale = errors.New("i18n: base locale catalog is missing")

// Catalog is the parsed, reference-resolved content of one locale file.
type Catalog struct {
	Locale   string
	Tag      language.Tag
	Resource *ftl.Resource
}

// Pattern returns the pattern for key, which is either a message id or
// "id.attribute".
func (c *Catalog) Pattern(key string) (ftl.Pattern, bool) {
	id, attr, hasAttr := strings.Cut(key, ".")
	entry, ok := c.Resource.Message(id)
	if !ok {
		return nil, false
	}
	if hasAttr {
		return entry.Attribute(attr)
	}
	if len(entry.Value) == 0 {
		return nil, false
	}
	return entry.Value, true
}

// Keys returns every renderable key, sorted: message ids with a value and
// one "id.attribute" key per attribute.
func (c *Catalog) Keys() []string {
	var keys []string
	for _, e := range c.Resource.Messages() {
		if len(e.Value) > 0 {
			keys = append(keys, e.ID)
		}
		for _, a := range e.Attributes {
			keys = append(keys, e.ID+"."+a.Name)
		}
	}
	sort.Strings(keys)
	return keys
}

// Catalogs holds one Catalog per locale.
type Catalogs struct {
	base     string
	byLocale map[string]*Catalog
}

// Embedded returns the catalogs compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Catalogs, error) {
	return LoadFromFS(Embedded())
}

// LoadFromFS loads every "<locale>.ftl" file at the root of fsys.
func LoadFromFS(fsys fs.FS) (*Catalogs, error) {
	names, err := fs.Glob(fsys, "*.ftl")
	if err != nil {
		return nil, fmt.Errorf("i18n: list catalogs: %w", err)
	}
	cs := &Catalogs{base: BaseLocale, byLocale: make(map[string]*Catalog, len(names))}
	for _, name := range names {
		c, err := loadCatalog(fsys, name)
		if err != nil {
			return nil, err
		}
		cs.byLocale[c.Locale] = c
	}
	if _, ok := cs.byLocale[cs.base]; !ok {
		return nil, fmt.Errorf("%w: %s.ftl", ErrMissingBaseLocale, cs.base)
	}
	return cs, nil
}

func loadCatalog(fsys fs.FS, name string) (*Catalog, error) {
	locale := strings.TrimSuffix(path.Base(name), ".ftl")
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("i18n: %s: invalid locale %q: %w", name, locale, err)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("i18n: read %s: %w", name, err)
	}
	res, err := ftl.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
	}
	if err := res.Resolve(); err != nil {
		return nil, fmt.Errorf("i18n: resolve %s: %w", name, err)
	}
	return &Catalog{Locale: locale, Tag: tag, Resource: res}, nil
}

// Base returns the base locale catalog.
func (cs *Catalogs) Base() *Catalog {
	return cs.byLocale[cs.base]
}

// Get returns the catalog of locale.
func (cs *Catalogs) Get(locale string) (*Catalog, bool) {
	c, ok := cs.byLocale[locale]
	return c, ok
}

// Locales returns the base locale first, then the others sorted.
func (cs *Catalogs) Locales() []string {
	others := make([]string, 0, len(cs.byLocale))
	for l := range cs.byLocale {
		if l != cs.base {
			others = append(others, l)
		}
	}
	sort.Strings(others)
	return append([]string{cs.base}, others...)
}

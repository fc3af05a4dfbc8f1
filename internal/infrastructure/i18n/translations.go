package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"rpbot/internal/infrastructure/logging"
	"rpbot/internal/ports/output"
	"rpbot/pkg/ftl"
)

// Ensure Translator implements the output ports.
var (
	_ output.T             = (*Translator)(nil)
	_ output.Localizations = (*Translator)(nil)
)

// Translator renders catalog entries through a go-i18n bundle.
type Translator struct {
	bundle   *i18n.Bundle
	catalogs *Catalogs
	logger   *slog.Logger
}

// NewTranslator registers every catalog pattern in a go-i18n bundle whose
// default language is the base locale. Attributes are registered under
// "id.attribute".
func NewTranslator(cs *Catalogs, logger *slog.Logger) (*Translator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	bundle := i18n.NewBundle(cs.Base().Tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, locale := range cs.Locales() {
		c, _ := cs.Get(locale)
		keys := c.Keys()
		messages := make([]*i18n.Message, 0, len(keys))
		for _, key := range keys {
			p, _ := c.Pattern(key)
			messages = append(messages, &i18n.Message{ID: key, Other: p.Template()})
		}
		if err := bundle.AddMessages(c.Tag, messages...); err != nil {
			return nil, fmt.Errorf("i18n: register %s: %w", locale, err)
		}
	}

	return &Translator{bundle: bundle, catalogs: cs, logger: logger}, nil
}

// LoadOverrides layers go-i18n TOML files named "active.<locale>.toml" over
// the catalogs. Overrides use go-i18n template syntax ({{.name}}).
func (t *Translator) LoadOverrides(fsys fs.FS) error {
	names, err := fs.Glob(fsys, "active.*.toml")
	if err != nil {
		return fmt.Errorf("i18n: list overrides: %w", err)
	}
	for _, name := range names {
		locale := strings.TrimSuffix(strings.TrimPrefix(path.Base(name), "active."), ".toml")
		if _, ok := t.catalogs.Get(locale); !ok {
			return fmt.Errorf("i18n: override %s targets unknown locale %q", name, locale)
		}
		if _, err := t.bundle.LoadMessageFileFS(fsys, name); err != nil {
			return fmt.Errorf("i18n: load override %s: %w", name, err)
		}
		t.logger.Info("surcharge de traductions chargée", "file", name)
	}
	return nil
}

// T renders key for locale. It falls back to the base locale, then to the
// key itself. Placeholders missing from data are filled with the message
// of the same name when one exists, otherwise left as {$name}.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, BaseLocale)

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: t.fill(locale, key, data),
	})
	if err != nil && msg == "" {
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			t.logger.Warn("traduction introuvable", "key", key, "locales", languages, logging.Err(err))
		} else {
			t.logger.Error("❌ Rendu de traduction impossible", "key", key, "locales", languages, logging.Err(err))
		}
		return key
	}
	return msg
}

// Lookup renders key in exactly locale, without fallback or arguments.
func (t *Translator) Lookup(locale, key string) (string, bool) {
	c, ok := t.catalogs.Get(locale)
	if !ok {
		return "", false
	}
	p, ok := c.Pattern(key)
	if !ok {
		return "", false
	}
	return p.Format(nil, nil), true
}

// Locales returns the available locales, base first.
func (t *Translator) Locales() []string {
	return t.catalogs.Locales()
}

// Match returns the catalog locale closest to the requested one.
func (t *Translator) Match(requested string) string {
	if _, ok := t.catalogs.Get(requested); ok {
		return requested
	}
	tag, err := language.Parse(requested)
	if err != nil {
		return BaseLocale
	}
	locales := t.catalogs.Locales()
	supported := make([]language.Tag, len(locales))
	for i, l := range locales {
		c, _ := t.catalogs.Get(l)
		supported[i] = c.Tag
	}
	_, index, confidence := language.NewMatcher(supported).Match(tag)
	if confidence == language.No {
		return BaseLocale
	}
	return locales[index]
}

func (t *Translator) fill(locale, key string, data map[string]any) map[string]any {
	p, ok := t.pattern(locale, key)
	if !ok {
		return data
	}
	vars := p.Variables()
	if len(vars) == 0 {
		return data
	}

	out := make(map[string]any, len(data)+len(vars))
	for k, v := range data {
		out[k] = v
	}
	for _, name := range vars {
		if _, ok := out[name]; ok {
			continue
		}
		if fallback, ok := t.pattern(locale, name); ok {
			out[name] = fallback.Format(nil, nil)
			continue
		}
		t.logger.Warn("variable de traduction manquante", "key", key, "variable", name, "locale", locale)
		out[name] = "{$" + name + "}"
	}
	return out
}

func (t *Translator) pattern(locale, key string) (ftl.Pattern, bool) {
	if c, ok := t.catalogs.Get(t.Match(locale)); ok {
		if p, ok := c.Pattern(key); ok {
			return p, true
		}
	}
	return t.catalogs.Base().Pattern(key)
}

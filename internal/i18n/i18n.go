package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFiles embed.FS

// DefaultLanguage is used when nothing better matches and as the lookup fallback.
const DefaultLanguage = "en"

// supported is ordered like the matcher tags; the first entry is the default.
var supported = []string{"en", "es", "fr"}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
	language.French,
})

// Catalog maps dotted keys (e.g. "errors.conversionFailed") to messages.
type Catalog map[string]string

var (
	loadOnce sync.Once
	catalogs map[string]Catalog
	loadErr  error
)

func load() (map[string]Catalog, error) {
	loadOnce.Do(func() {
		catalogs = make(map[string]Catalog, len(supported))
		for _, lang := range supported {
			data, err := localeFiles.ReadFile("locales/" + lang + ".json")
			if err != nil {
				loadErr = fmt.Errorf("failed to read %s catalog: %w", lang, err)
				return
			}
			var tree map[string]any
			if err := json.Unmarshal(data, &tree); err != nil {
				loadErr = fmt.Errorf("failed to parse %s catalog: %w", lang, err)
				return
			}
			cat := make(Catalog)
			flatten("", tree, cat)
			catalogs[lang] = cat
		}
	})
	return catalogs, loadErr
}

func flatten(prefix string, tree map[string]any, out Catalog) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		}
	}
}

// Supported returns the languages with a catalog.
func Supported() []string {
	return append([]string(nil), supported...)
}

// Match picks the best supported language for the given preferences.
// Each preference may be a BCP 47 tag, an Accept-Language value or a POSIX
// locale such as "fr_FR.UTF-8".
func Match(prefs ...string) string {
	var tags []language.Tag
	for _, p := range prefs {
		p = normalize(p)
		if p == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return DefaultLanguage
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	return supported[idx]
}

func normalize(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// Translator resolves message keys for one language.
type Translator struct {
	lang     string
	catalog  Catalog
	fallback Catalog
}

// New returns a translator for the best match of lang.
func New(lang string) (*Translator, error) {
	cats, err := load()
	if err != nil {
		return nil, err
	}
	matched := Match(lang)
	return &Translator{
		lang:     matched,
		catalog:  cats[matched],
		fallback: cats[DefaultLanguage],
	}, nil
}

var (
	defaultOnce       sync.Once
	defaultTranslator *Translator
)

// Default returns the English translator.
// If the embedded catalogs cannot be loaded, lookups return their keys.
func Default() *Translator {
	defaultOnce.Do(func() {
		t, err := New(DefaultLanguage)
		if err != nil {
			t = &Translator{lang: DefaultLanguage}
		}
		defaultTranslator = t
	})
	return defaultTranslator
}

// Lang returns the language of the translator.
func (t *Translator) Lang() string { return t.lang }

// T returns the message for key, formatted with args when given.
// Missing keys fall back to English and then to the key itself.
func (t *Translator) T(key string, args ...any) string {
	msg, ok := t.catalog[key]
	if !ok {
		msg, ok = t.fallback[key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Has reports whether key resolves to a message in any catalog of the translator.
func (t *Translator) Has(key string) bool {
	if _, ok := t.catalog[key]; ok {
		return true
	}
	_, ok := t.fallback[key]
	return ok
}

// Package i18n provides the message bundles used to translate argspec errors
// and schema warnings.
//
// The system-wide bundle returned by Default is loaded from the embedded
// locales and is immutable. Callers who want different wording create their
// own bundle with NewEmptyBundle or NewBundle and hand it to an introspector
// or to errs.UpdateMessageProvider.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/napalu/argspec/types/orderedmap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrDefaultLanguageNotFound            = errors.New("default " + ErrLanguageNotFound.Error())
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
	ErrBundleImmutable                    = errors.New("bundle is immutable and cannot be modified")
)

type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations *orderedmap.OrderedMap[language.Tag, map[string]string]
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	matcher      language.Matcher
	matchTags    []language.Tag
	isImmutable  bool
}

var (
	defaultBundleOnce sync.Once
	defaultBundle     *Bundle
)

// Default returns the immutable system bundle holding the built-in locales.
func Default() *Bundle {
	defaultBundleOnce.Do(func() {
		b, err := NewBundle()
		if err != nil {
			panic("failed to load embedded locales: " + err.Error())
		}
		b.isImmutable = true
		defaultBundle = b
	})

	return defaultBundle
}

// NewEmptyBundle returns a bundle without translations whose default language is English.
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: orderedmap.NewOrderedMap[language.Tag, map[string]string](),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}
}

// NewBundle returns a mutable bundle pre-loaded with the built-in locales.
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewBundleWithFS loads every <language>.json file found in dirPrefix. The
// default language (English) is loaded first so that other languages can be
// checked against it.
func NewBundleWithFS(fs embed.FS, dirPrefix string) (*Bundle, error) {
	b := NewEmptyBundle()
	if err := b.loadEmbeddedWithFS(fs, dirPrefix); err != nil {
		return nil, err
	}

	if _, exists := b.translations.Get(b.defaultLang); !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	return b, nil
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	b.mu.RLock()
	defaultLang := b.defaultLang
	b.mu.RUnlock()

	return b.TL(defaultLang, key, args...)
}

// TL returns the translation for the given language and key. Keys without a
// translation are formatted as given.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	p, exists := b.printers[lang]
	if !exists {
		p = b.printers[b.defaultLang]
	}
	if p == nil {
		p = message.NewPrinter(lang)
	}

	return p.Sprintf(message.Key(key, key), args...)
}

// Lookup returns the raw, unformatted translation of key in lang.
func (b *Bundle) Lookup(lang language.Tag, key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, ok := b.translations.Get(lang)
	if !ok {
		return "", false
	}
	msg, ok := translations[key]

	return msg, ok
}

// AddLanguage adds a new language to the bundle or merges translations into an existing one.
// A new non-default language must carry exactly the keys of the default language.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.isImmutable {
		return ErrBundleImmutable
	}

	original, hadOriginal := b.translations.Get(lang)
	merged := make(map[string]string, len(original)+len(translations))
	for k, v := range original {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}
	b.translations.Set(lang, merged)

	var errs []error
	if lang != b.defaultLang && !hadOriginal {
		errs = b.validateLanguage(lang)
	}

	if len(errs) > 0 {
		if hadOriginal {
			b.translations.Set(lang, original)
		} else {
			b.translations.Delete(lang)
		}
		return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, errs)
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			delete(merged, key)
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	b.matcher = nil

	return nil
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations.Get(lang)

	return exists
}

// Languages returns the supported languages sorted by tag
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.languages()
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	_, ok := b.Lookup(lang, key)
	return ok
}

// SetDefaultLanguage sets the default language. The language must already be loaded.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.isImmutable {
		return ErrBundleImmutable
	}
	if _, exists := b.translations.Get(lang); !exists {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}
	b.defaultLang = lang
	b.matcher = nil

	return nil
}

// GetDefaultLanguage returns the default language
func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.defaultLang
}

// MatchLanguage returns the best supported language for the requested tags,
// falling back to the default language.
func (b *Bundle) MatchLanguage(preferred ...language.Tag) language.Tag {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.matcher == nil {
		b.matchTags = []language.Tag{b.defaultLang}
		for _, lang := range b.languages() {
			if lang != b.defaultLang {
				b.matchTags = append(b.matchTags, lang)
			}
		}
		b.matcher = language.NewMatcher(b.matchTags)
	}

	_, idx, confidence := b.matcher.Match(preferred...)
	if confidence == language.No {
		return b.defaultLang
	}

	return b.matchTags[idx]
}

func (b *Bundle) languages() []language.Tag {
	langs := make([]language.Tag, 0, b.translations.Count())
	for it := b.translations.Front(); it != nil; it = it.Next() {
		langs = append(langs, *it.Key)
	}

	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	return langs
}

func (b *Bundle) loadEmbeddedWithFS(fs embed.FS, dirPrefix string) error {
	entries, err := fs.ReadDir(dirPrefix)
	if err != nil {
		return err
	}

	var deferred []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		if lang != b.defaultLang {
			deferred = append(deferred, entry.Name())
			continue
		}
		if err := b.processLangFile(fs, lang, path.Join(dirPrefix, entry.Name())); err != nil {
			return err
		}
	}

	for _, name := range deferred {
		lang := language.MustParse(strings.TrimSuffix(name, ".json"))
		if err := b.processLangFile(fs, lang, path.Join(dirPrefix, name)); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bundle) processLangFile(fs embed.FS, lang language.Tag, filePath string) error {
	data, err := fs.ReadFile(filePath)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return err
	}

	return b.AddLanguage(lang, translations)
}

func (b *Bundle) validateLanguage(lang language.Tag) []error {
	var errs []error

	translations, _ := b.translations.Get(lang)
	if len(translations) == 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyTranslations, lang))
	}

	defaultTranslations, exists := b.translations.Get(b.defaultLang)
	if !exists {
		return append(errs, fmt.Errorf("%w: %s", ErrDefaultLanguageNotFound, b.defaultLang))
	}

	for key := range defaultTranslations {
		if _, exists := translations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}

	for key := range translations {
		if _, exists := defaultTranslations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}

	return errs
}

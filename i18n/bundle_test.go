package i18n

import (
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultBundle(t *testing.T) {
	b := Default()
	require.NotNil(t, b)
	assert.Same(t, b, Default())

	assert.Equal(t, language.English, b.GetDefaultLanguage())
	assert.True(t, b.HasLanguage(language.English))
	assert.True(t, b.HasLanguage(language.German))
	assert.Equal(t, "option name must not be empty", b.T("argspec.error.empty_option_name"))

	t.Run("immutable", func(t *testing.T) {
		err := b.AddLanguage(language.French, map[string]string{"k": "v"})
		assert.True(t, errors.Is(err, ErrBundleImmutable))
		assert.True(t, errors.Is(b.SetDefaultLanguage(language.German), ErrBundleImmutable))
	})
}

func TestBuiltInLocalesShareKeys(t *testing.T) {
	keysOf := func(name string) []string {
		data, err := defaultLocales.ReadFile("locales/" + name)
		require.NoError(t, err)
		var m map[string]string
		require.NoError(t, json.Unmarshal(data, &m))
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys
	}

	assert.Equal(t, keysOf("en.json"), keysOf("de.json"))
}

func TestBundle_Translate(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	assert.Equal(t, "did you mean '--verbose'?", b.T("argspec.error.did_you_mean", "--verbose"))
	assert.Equal(t, "meinten Sie '--verbose'?", b.TL(language.German, "argspec.error.did_you_mean", "--verbose"))
	assert.Equal(t, "unknown.key", b.T("unknown.key"))

	require.NoError(t, b.SetDefaultLanguage(language.German))
	assert.Equal(t, "meinten Sie '--verbose'?", b.T("argspec.error.did_you_mean", "--verbose"))

	err = b.SetDefaultLanguage(language.Japanese)
	assert.True(t, errors.Is(err, ErrLanguageNotFound))
}

func TestBundle_Lookup(t *testing.T) {
	b := NewEmptyBundle()
	require.NoError(t, b.AddLanguage(language.English, map[string]string{"app.verbose": "verbose output %s"}))

	msg, ok := b.Lookup(language.English, "app.verbose")
	assert.True(t, ok)
	assert.Equal(t, "verbose output %s", msg)
	assert.True(t, b.HasKey(language.English, "app.verbose"))

	_, ok = b.Lookup(language.English, "app.quiet")
	assert.False(t, ok)
	_, ok = b.Lookup(language.German, "app.verbose")
	assert.False(t, ok)
}

func TestBundle_AddLanguage(t *testing.T) {
	tests := []struct {
		name         string
		translations map[string]string
		wantErr      error
	}{
		{
			name:         "matching keys",
			translations: map[string]string{"a": "A-fr", "b": "B-fr"},
		},
		{
			name:         "missing key",
			translations: map[string]string{"a": "A-fr"},
			wantErr:      ErrInvalidTranslations,
		},
		{
			name:         "extra key",
			translations: map[string]string{"a": "A-fr", "b": "B-fr", "c": "C-fr"},
			wantErr:      ErrInvalidTranslations,
		},
		{
			name:         "empty",
			translations: map[string]string{},
			wantErr:      ErrInvalidTranslations,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewEmptyBundle()
			require.NoError(t, b.AddLanguage(language.English, map[string]string{"a": "A", "b": "B"}))

			err := b.AddLanguage(language.French, tt.translations)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.False(t, b.HasLanguage(language.French))
				return
			}
			require.NoError(t, err)
			assert.True(t, b.HasLanguage(language.French))
			assert.Equal(t, "A-fr", b.TL(language.French, "a"))
		})
	}

	t.Run("merge into existing language", func(t *testing.T) {
		b := NewEmptyBundle()
		require.NoError(t, b.AddLanguage(language.English, map[string]string{"a": "A"}))
		require.NoError(t, b.AddLanguage(language.English, map[string]string{"b": "B"}))
		assert.True(t, b.HasKey(language.English, "a"))
		assert.True(t, b.HasKey(language.English, "b"))
	})
}

func TestBundle_Languages(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)
	assert.Equal(t, []language.Tag{language.German, language.English}, b.Languages())
}

func TestBundle_MatchLanguage(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	assert.Equal(t, language.German, b.MatchLanguage(language.MustParse("de-CH")))
	assert.Equal(t, language.English, b.MatchLanguage(language.MustParse("en-GB")))
	assert.Equal(t, language.English, b.MatchLanguage(language.Japanese))
	assert.Equal(t, language.English, b.MatchLanguage())
}

func TestBundle_TranslateUnknownKeyWithArgs(t *testing.T) {
	tests := []struct {
		name   string
		bundle *Bundle
	}{
		{name: "bundle without languages", bundle: NewEmptyBundle()},
		{name: "default bundle", bundle: Default()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "app.retries"
			assert.Equal(t, "app.retries", tt.bundle.T(key))
			assert.Equal(t, "retries: 3", tt.bundle.T("retries: %d", 3))
			assert.Equal(t, "retries: 3", tt.bundle.TL(language.Japanese, "retries: %d", 3))
		})
	}
}

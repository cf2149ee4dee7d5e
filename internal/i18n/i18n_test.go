package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoad_Embedded(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	langs := b.Languages()
	require.Len(t, langs, 4)
	assert.Equal(t, Default, langs[0])
	for _, code := range []string{"ko", "en", "ja", "fr"} {
		assert.True(t, b.Supports(code), code)
	}
	assert.False(t, b.Supports("de"))
}

func TestLanguages_StableOrder(t *testing.T) {
	want := []string{"ko", "en", "fr", "ja"}
	for range 20 {
		b, err := Load()
		require.NoError(t, err)

		got := make([]string, 0, len(want))
		for _, tag := range b.Languages() {
			got = append(got, tag.String())
		}
		require.Equal(t, want, got)
	}
}

func TestMatch(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name     string
		explicit string
		accept   string
		want     language.Tag
	}{
		{"nothing", "", "", language.Korean},
		{"header", "", "fr-FR,fr;q=0.9,en;q=0.8", language.French},
		{"explicit wins", "ja", "fr-FR,fr;q=0.9", language.Japanese},
		{"unsupported falls to default", "", "de-DE", language.Korean},
		{"garbage explicit ignored", "!!", "en-US", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Match(tt.explicit, tt.accept))
		})
	}
}

func TestLocalizer_Fallback(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	ja := b.Localizer(language.Japanese)
	assert.Equal(t, "ja", ja.Lang())
	assert.Equal(t, "送信", ja.T("CONTACT_US_SECTION_SUBMIT"))
	// not translated in ja or fr, served from en
	assert.Equal(t, "Call me", b.Localizer(language.French).T("CONTACT_US_ASIDE_PHONE_MESSAGE"))
	assert.Equal(t, "Could not copy the email address.", ja.T("ERROR_TEXT_COPY"))
	assert.Equal(t, "NO_SUCH_KEY", ja.T("NO_SUCH_KEY"))
}

func en(b *Bundle) *Localizer { return b.Localizer(language.English) }

func TestLocalizer_Strings(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	ko := b.Localizer(language.Korean)
	assert.Len(t, ko.Strings("MAIN_TEXTS_ANIMATION_ARR"), 3)
	assert.Nil(t, ko.Strings("DOWNLOAD_CV"))
	assert.Nil(t, ko.Strings("NO_SUCH_KEY"))
	// a list key is not a string
	assert.Equal(t, "MAIN_TEXTS_ANIMATION_ARR", ko.T("MAIN_TEXTS_ANIMATION_ARR"))
}

func TestLocalizer_Tf(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	l := en(b)
	assert.Equal(t, "Could not copy the email address. permission denied", l.Tf("ERROR_TEXT_COPY", "permission denied"))
	assert.Equal(t, l.T("ERROR_TEXT_COPY"), l.Tf("ERROR_TEXT_COPY"))
}

func TestLocalizer_UnknownTagUsesDefault(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ko", b.Localizer(language.German).Lang())
}

func TestNew_RequiresDefaultAndFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"en.yaml": {Data: []byte("A: b\n")},
	}
	_, err := New(fsys)
	assert.ErrorContains(t, err, "missing catalog for ko")

	fsys["ko.yaml"] = &fstest.MapFile{Data: []byte("A: c\n")}
	b, err := New(fsys)
	require.NoError(t, err)
	assert.Equal(t, "c", b.Localizer(language.Korean).T("A"))
}

func TestNew_BadYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"en.yaml": {Data: []byte("A: [unterminated\n")},
		"ko.yaml": {Data: []byte("A: c\n")},
	}
	_, err := New(fsys)
	assert.ErrorContains(t, err, "parse catalog en.yaml")
}

package generation_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapjournal/diarykit/pkg/generation"
)

func TestOfflineComposerTotality(t *testing.T) {
	t.Parallel()

	composer := generation.NewOfflineComposer()

	// Any non-empty item list yields a usable entry, whatever the locale.
	for _, n := range []int{1, 2, 3, 7} {
		for _, locale := range []string{"en", "de", "fr", "es", "ja", "pt-BR", "nonsense", ""} {
			req := generation.Request{Items: items(n), Locale: locale}

			out := composer.Generate(context.Background(), req)

			assert.NotEmpty(t, out.Title, "n=%d locale=%q", n, locale)
			assert.NotEmpty(t, out.Content, "n=%d locale=%q", n, locale)
			assert.True(t, out.GeneratedOffline)
		}
	}
}

func TestOfflineComposerDeterminism(t *testing.T) {
	t.Parallel()

	composer := generation.NewOfflineComposer()
	req := generation.Request{Items: items(2), Locale: "en", ContextHints: "rainy day at the lake"}

	first := composer.Generate(context.Background(), req)
	second := composer.Generate(context.Background(), req)

	assert.Equal(t, first, second, "same request always drafts the same text")
}

func TestOfflineComposerContent(t *testing.T) {
	t.Parallel()

	composer := generation.NewOfflineComposer()

	t.Run("one line per photo", func(t *testing.T) {
		t.Parallel()

		out := composer.Generate(context.Background(), generation.Request{Items: items(3), Locale: "en"})

		require.Equal(t, 4, strings.Count(out.Content, "\n")+1, "intro plus one line per photo")
		for i := 1; i <= 3; i++ {
			assert.Contains(t, out.Content, fmt.Sprintf("Photo %d", i))
		}
	})

	t.Run("context hint is echoed", func(t *testing.T) {
		t.Parallel()

		out := composer.Generate(context.Background(), generation.Request{
			Items:        items(1),
			Locale:       "en",
			ContextHints: "first snow of the year",
		})

		assert.Contains(t, out.Content, "first snow of the year")
	})

	t.Run("localized templates", func(t *testing.T) {
		t.Parallel()

		de := composer.Generate(context.Background(), generation.Request{Items: items(1), Locale: "de-AT"})
		assert.Contains(t, de.Content, "Offline verfasst")

		ja := composer.Generate(context.Background(), generation.Request{Items: items(1), Locale: "ja"})
		assert.Contains(t, ja.Content, "オフライン")
	})

	t.Run("unsupported locale falls back to english", func(t *testing.T) {
		t.Parallel()

		out := composer.Generate(context.Background(), generation.Request{Items: items(1), Locale: "xx-YY"})

		assert.Contains(t, out.Content, "Written offline")
	})
}

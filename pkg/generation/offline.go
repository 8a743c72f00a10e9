package generation

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"golang.org/x/text/language"
)

// Word banks for offline placeholder entries. Picked deterministically from
// a hash of the request so the same photos always draft the same text.
var moods = []string{
	"quiet", "bright", "gentle", "warm", "crisp", "golden", "soft", "vivid",
	"calm", "restless", "tender", "hazy", "radiant", "mellow", "wistful", "light",
}

var subjects = []string{
	"morning", "afternoon", "evening", "walk", "meal", "gathering", "view",
	"moment", "detour", "pause", "discovery", "ritual", "visit", "sky", "street", "table",
}

// localeText holds the fallback template strings for one supported language.
type localeText struct {
	title    string
	intro    string
	photo    string // fmt template: index, mood, subject
	withHint string // fmt template: the user's context hint
}

var offlineTexts = map[language.Tag]localeText{
	language.English: {
		title:    "A %s %s",
		intro:    "Written offline. The full entry will be ready when you're back online.",
		photo:    "Photo %d holds a %s %s worth remembering.",
		withHint: "You noted: %s",
	},
	language.German: {
		title:    "Ein %s %s",
		intro:    "Offline verfasst. Der vollständige Eintrag folgt, sobald du wieder online bist.",
		photo:    "Foto %d zeigt einen %s %s, der bleiben soll.",
		withHint: "Deine Notiz: %s",
	},
	language.Spanish: {
		title:    "Un %s %s",
		intro:    "Escrito sin conexión. La entrada completa estará lista cuando vuelvas a estar en línea.",
		photo:    "La foto %d guarda un %s %s que vale la pena recordar.",
		withHint: "Tu nota: %s",
	},
	language.French: {
		title:    "Un %s %s",
		intro:    "Rédigé hors ligne. L'entrée complète sera prête dès votre retour en ligne.",
		photo:    "La photo %d garde un %s %s à retenir.",
		withHint: "Votre note : %s",
	},
	language.Japanese: {
		title:    "%s%s",
		intro:    "オフラインで作成しました。オンラインに戻ると完全な日記が作成されます。",
		photo:    "写真%dには、覚えておきたい%s%sが写っています。",
		withHint: "メモ: %s",
	},
}

var offlineMatcher = language.NewMatcher([]language.Tag{
	language.English, // first tag is the fallback
	language.German,
	language.Spanish,
	language.French,
	language.Japanese,
})

// OfflineComposer is the built-in FallbackProvider. It drafts a short,
// deterministic placeholder entry from the request alone: no network, no
// clock, no randomness, so it can never fail and tests can assert exact
// output.
type OfflineComposer struct{}

// NewOfflineComposer returns the deterministic offline fallback.
func NewOfflineComposer() *OfflineComposer {
	return &OfflineComposer{}
}

// Generate drafts a placeholder entry for any well-formed request.
func (c *OfflineComposer) Generate(_ context.Context, req Request) Outcome {
	text := textsFor(req.Locale)
	seed := requestSeed(req)

	mood := moods[seed%uint64(len(moods))]
	subject := subjects[(seed/uint64(len(moods)))%uint64(len(subjects))]

	var b strings.Builder
	b.WriteString(text.intro)
	for i := range req.Items {
		itemSeed := seed + uint64(i)*2654435761
		m := moods[itemSeed%uint64(len(moods))]
		s := subjects[(itemSeed/7)%uint64(len(subjects))]
		b.WriteString("\n")
		fmt.Fprintf(&b, text.photo, i+1, m, s)
	}
	if hint := strings.TrimSpace(req.ContextHints); hint != "" {
		b.WriteString("\n")
		fmt.Fprintf(&b, text.withHint, hint)
	}

	return Outcome{
		Title:            fmt.Sprintf(text.title, mood, subject),
		Content:          b.String(),
		GeneratedOffline: true,
	}
}

func textsFor(locale string) localeText {
	tag, err := language.Parse(locale)
	if err != nil {
		return offlineTexts[language.English]
	}
	_, idx, _ := offlineMatcher.Match(tag)
	matched := []language.Tag{
		language.English, language.German, language.Spanish, language.French, language.Japanese,
	}[idx]
	return offlineTexts[matched]
}

// requestSeed hashes the item identities so the draft is stable per request.
func requestSeed(req Request) uint64 {
	h := fnv.New64a()
	for _, item := range req.Items {
		_, _ = h.Write([]byte(item.ID))
		if len(item.Data) > 0 {
			_, _ = h.Write(item.Data[:min(len(item.Data), 64)])
		}
	}
	return h.Sum64()
}

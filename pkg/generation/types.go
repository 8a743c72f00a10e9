package generation

// InputItem describes one photo attached to a diary-entry request.
type InputItem struct {
	ID       string // client-side asset identifier
	MIME     string
	Data     []byte
	Caption  string // optional user note on the photo
	TakenDay string // YYYY-MM-DD in the device timezone, free-form
}

// ProgressFunc receives progress after each completed generation step.
// current is 1-based and strictly increasing up to total.
type ProgressFunc func(current, total int)

// Request is one orchestration call: the photos to write about plus context.
type Request struct {
	Items        []InputItem
	ContextHints string // free-form prompt or mood hints from the user
	Locale       string // BCP 47 tag; normalized before use
	OnProgress   ProgressFunc
}

// RawResult is what the upstream provider returns for one item.
type RawResult struct {
	Title   string
	Content string
}

// Outcome is the generated diary entry handed back to the caller.
type Outcome struct {
	Title   string
	Content string

	// GeneratedOffline marks results produced by the offline fallback rather
	// than the network provider. Not an error: the product requires the UI
	// to render these visually distinguishable from network-origin entries.
	GeneratedOffline bool

	// UsageCommitDegraded marks the rare race where quota was exhausted by a
	// concurrent request between the pre-check and the commit. The generated
	// work is still honored; the tracker simply declined to count it.
	UsageCommitDegraded bool
}

// Config bounds orchestration. Loaded from the environment via pkg/config.
type Config struct {
	MaxItems      int    `env:"GENERATION_MAX_ITEMS" envDefault:"3"`
	DefaultLocale string `env:"GENERATION_DEFAULT_LOCALE" envDefault:"en"`
}

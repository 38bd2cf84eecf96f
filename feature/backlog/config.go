package backlog

// Config holds configuration for the sync engine.
type Config struct {
	// IntervalMinutes is the delay between periodic sync passes.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"60"`
	// AbortOnFirstFailure aborts the whole pass on the first user error
	// (legacy behavior). When false, per-user failures are isolated and
	// collected into the pass report.
	AbortOnFirstFailure bool `mapstructure:"abort_on_first_failure" default:"true"`
	// PreserveDates keeps an already-set start date across passes and
	// stamps the acquisition date only once, at insert. When false, both
	// are re-stamped on every pass (legacy behavior).
	PreserveDates bool `mapstructure:"preserve_dates" default:"true"`
	// MirrorArtwork copies game icon images into object storage.
	MirrorArtwork bool `mapstructure:"mirror_artwork" default:"false"`
}

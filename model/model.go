package model

// Clip is one discovered source audio file whose name parsed far enough
// to be usable.
type Clip struct {
	SourcePath string
	RawName    string

	NoteLetter byte
	Sharp      bool
	Octave     int
	Quality    string

	Key Key
}

// Key is the index key a clip will be stored under. Resolved keys are
// "<midi>-<quality>"; unresolved ones fall back to the raw filename stem,
// which the web client treats as an opaque identifier.
type Key struct {
	Value    string
	Midi     int
	Resolved bool
}

// TimedClip is a clip whose duration has been measured (or defaulted,
// in the fully degraded mode).
type TimedClip struct {
	Clip     Clip
	Duration float64
}

// Rejection records why a candidate file was excluded, for the report
// and build diagnostics.
type Rejection struct {
	Name   string
	Reason string
}

// IndexEntry is what the web client looks up per key.
type IndexEntry struct {
	Sprite   string  `json:"sprite"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
}

type SpriteIndex = map[string]IndexEntry

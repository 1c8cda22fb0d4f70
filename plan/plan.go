package plan

import "os/exec"

// Mode is picked once at startup from the two tool capabilities and
// never re-checked; every later branch dispatches on it.
type Mode int

const (
	// Full: ffprobe durations, ffmpeg sprites.
	Full Mode = iota
	// MetaDurations: no ffprobe; durations come from embedded metadata,
	// clips without a readable duration are excluded. Sprites still built.
	MetaDurations
	// PerFileProbed: no ffmpeg; index points at the source files with
	// zero offsets, durations probed best-effort.
	PerFileProbed
	// PerFileMeta: neither tool; per-file index, metadata durations,
	// zero when unreadable.
	PerFileMeta
)

func (m Mode) String() string {
	switch m {
	case Full:
		return "full pipeline"
	case MetaDurations:
		return "metadata durations"
	case PerFileProbed:
		return "per-file index (probed durations)"
	case PerFileMeta:
		return "per-file index (metadata durations)"
	}
	return "unknown"
}

// BuildsSprites reports whether the mode concatenates sprites or falls
// back to the per-file index.
func (m Mode) BuildsSprites() bool {
	return m == Full || m == MetaDurations
}

// Select maps the two capability flags onto a mode.
func Select(haveProbe, haveConvert bool) Mode {
	switch {
	case haveProbe && haveConvert:
		return Full
	case !haveProbe && haveConvert:
		return MetaDurations
	case haveProbe:
		return PerFileProbed
	default:
		return PerFileMeta
	}
}

// Detect checks PATH for the two external tools and selects the mode.
func Detect() Mode {
	return Select(lookPathOK("ffprobe"), lookPathOK("ffmpeg"))
}

func lookPathOK(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

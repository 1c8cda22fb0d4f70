package constants

import "os"

// GetSpritesDir is where built sprites and the index land unless
// overridden on the command line.
func GetSpritesDir() string {
	path := os.Getenv("SPRITES_PATH")
	if path != "" {
		return path
	}
	return "sprites"
}

// ReservedDir is excluded from clip scans so a previous build's output
// is never treated as input.
const ReservedDir = "sprites"

const IndexFilename = "sprites.json"

// Normalization target for intermediates. Everything gets resampled to
// this before concatenation so the concat demuxer sees one format.
const (
	SampleRate = 44100
	Channels   = 2
)

// MP3 VBR quality for the final sprite encode (libmp3lame -qscale:a).
const EncodeQuality = "4"

var ClipExtensions = map[string]bool{
	".mp3": true,
	".wav": true,
	".ogg": true,
	".m4a": true,
}

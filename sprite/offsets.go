package sprite

import (
	"math"

	"github.com/jsphweid/notesprite/model"
)

// RoundMs rounds to millisecond precision, the resolution the web
// player schedules at.
func RoundMs(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// AccumulateOffsets assigns each clip its start offset inside the
// sprite. The accumulated offset is re-rounded at every step before the
// next duration is added, so rounding error can drift by up to 1ms per
// clip; the client has always been built against this behavior, so it
// is kept rather than rounding only on output.
func AccumulateOffsets(spritePath string, clips []model.TimedClip) model.SpriteIndex {
	res := make(model.SpriteIndex)
	var offset float64
	for _, c := range clips {
		res[c.Clip.Key.Value] = model.IndexEntry{
			Sprite:   spritePath,
			Offset:   offset,
			Duration: RoundMs(c.Duration),
		}
		offset = RoundMs(offset + c.Duration)
	}
	return res
}

// PerFileIndex is the degraded shape used when ffmpeg is unavailable:
// every entry points at its own source file with a zero offset.
func PerFileIndex(clips []model.TimedClip) model.SpriteIndex {
	res := make(model.SpriteIndex)
	for _, c := range clips {
		res[c.Clip.Key.Value] = model.IndexEntry{
			Sprite:   c.Clip.SourcePath,
			Offset:   0,
			Duration: RoundMs(c.Duration),
		}
	}
	return res
}

// Merge copies src entries into dst, overwriting on key collision.
// Groups are merged in tier order, so the last tier wins.
func Merge(dst, src model.SpriteIndex) {
	for k, v := range src {
		dst[k] = v
	}
}

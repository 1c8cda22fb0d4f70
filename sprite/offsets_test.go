package sprite

import (
	"math"
	"testing"

	"github.com/jsphweid/notesprite/model"
	"github.com/stretchr/testify/assert"
)

func timed(key string, duration float64) model.TimedClip {
	return model.TimedClip{
		Clip: model.Clip{
			RawName:    key,
			SourcePath: key + ".mp3",
			Key:        model.Key{Value: key, Resolved: true},
		},
		Duration: duration,
	}
}

func TestAccumulatesOffsetsForTwoClips(t *testing.T) {
	clips := []model.TimedClip{
		timed("48-Maj", 1.200),
		timed("49-Maj", 0.950),
	}
	index := AccumulateOffsets("easy.mp3", clips)

	assert := assert.New(t)
	assert.Equal(model.IndexEntry{Sprite: "easy.mp3", Offset: 0, Duration: 1.2}, index["48-Maj"])
	assert.Equal(model.IndexEntry{Sprite: "easy.mp3", Offset: 1.2, Duration: 0.95}, index["49-Maj"])
}

func TestOffsetsStartAtZeroAndNeverDecrease(t *testing.T) {
	clips := []model.TimedClip{
		timed("a", 0.4015),
		timed("b", 0.3335),
		timed("c", 1.0005),
		timed("d", 0.0001),
		timed("e", 2.75),
	}
	index := AccumulateOffsets("hard.mp3", clips)

	assert := assert.New(t)
	assert.Equal(0.0, index["a"].Offset)
	prev := 0.0
	for _, key := range []string{"a", "b", "c", "d", "e"} {
		assert.GreaterOrEqual(index[key].Offset, prev)
		prev = index[key].Offset
	}
}

// The accumulated offset is rounded at every step, so the final offset
// may drift from the exact duration sum, but never by more than 1ms per
// accumulated clip.
func TestFinalOffsetTracksDurationSumWithinRoundingTolerance(t *testing.T) {
	var clips []model.TimedClip
	var sum float64
	durations := []float64{0.3331, 0.3334, 0.5007, 1.2493, 0.0021, 0.9996, 0.1111}
	for i, d := range durations {
		clips = append(clips, timed(string(rune('a'+i)), d))
		sum += d
	}
	index := AccumulateOffsets("hard.mp3", clips)

	last := clips[len(clips)-1]
	finalEnd := index[last.Clip.Key.Value].Offset + last.Duration
	assert.InDelta(t, sum, finalEnd, 0.001*float64(len(clips)))
}

func TestStepwiseRoundingIsAppliedToTheAccumulatedOffset(t *testing.T) {
	clips := []model.TimedClip{
		timed("a", 0.0004),
		timed("b", 0.0004),
		timed("c", 0.0004),
	}
	index := AccumulateOffsets("easy.mp3", clips)

	// each step rounds 0.0004 away, so the offsets collapse to zero
	// instead of reaching round(0.0012) = 0.001
	assert := assert.New(t)
	assert.Equal(0.0, index["b"].Offset)
	assert.Equal(0.0, index["c"].Offset)
}

func TestPerFileIndexPointsAtSourcesWithZeroOffsets(t *testing.T) {
	clips := []model.TimedClip{
		timed("48-Maj", 1.25),
		timed("50-Min", 0.8),
	}
	index := PerFileIndex(clips)

	assert := assert.New(t)
	assert.Equal(2, len(index))
	assert.Equal("48-Maj.mp3", index["48-Maj"].Sprite)
	assert.Equal(0.0, index["48-Maj"].Offset)
	assert.Equal(1.25, index["48-Maj"].Duration)
	assert.Equal(0.0, index["50-Min"].Offset)
}

func TestMergeIsLastGroupWins(t *testing.T) {
	dst := model.SpriteIndex{
		"48-Maj": {Sprite: "easy.mp3", Offset: 0, Duration: 1.2},
	}
	Merge(dst, model.SpriteIndex{
		"48-Maj": {Sprite: "hard.mp3", Offset: 3.4, Duration: 1.2},
		"51-Dim": {Sprite: "hard.mp3", Offset: 0, Duration: 0.9},
	})

	assert := assert.New(t)
	assert.Equal("hard.mp3", dst["48-Maj"].Sprite)
	assert.Equal(3.4, dst["48-Maj"].Offset)
	assert.Equal(2, len(dst))
}

func TestRoundMs(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1.2, RoundMs(1.2004))
	assert.Equal(1.201, RoundMs(1.2006))
	assert.Equal(0.0, RoundMs(0.0))
	assert.True(math.Abs(RoundMs(2.9996)-3.0) < 1e-9)
}

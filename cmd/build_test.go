package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/notesprite/model"
	"github.com/jsphweid/notesprite/plan"
	"github.com/stretchr/testify/assert"
)

func parsedClip(name string) model.Clip {
	return model.Clip{
		SourcePath: name + ".mp3",
		RawName:    name,
		Key:        model.Key{Value: name, Resolved: true},
	}
}

func flakyMeasure(bad string) func(string) (float64, error) {
	return func(path string) (float64, error) {
		if path == bad {
			return 0, fmt.Errorf("unreadable")
		}
		return 1.2, nil
	}
}

func TestIndexPathDefaultsUnderSpritesDir(t *testing.T) {
	oldDir, oldIndex := buildSpritesDir, buildIndexPath
	defer func() { buildSpritesDir, buildIndexPath = oldDir, oldIndex }()

	buildSpritesDir = "sprites"
	buildIndexPath = ""
	assert.Equal(t, filepath.Join("sprites", "sprites.json"), indexPath())

	buildIndexPath = "elsewhere/index.json"
	assert.Equal(t, "elsewhere/index.json", indexPath())
}

func TestRunBuildFailsOnMissingDir(t *testing.T) {
	err := runBuild(filepath.Join(t.TempDir(), "nope"))
	assert.NotNil(t, err)
}

func TestRunBuildFailsOnEmptyDir(t *testing.T) {
	err := runBuild(t.TempDir())
	assert.NotNil(t, err)
}

func TestRunBuildFailsWhenNothingParses(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Cs3Maj.mp3"), []byte("x"), 0666); err != nil {
		t.Fatal(err)
	}

	err := runBuild(dir)
	assert.NotNil(t, err)
}

func TestUnreadableDurationsAreExcludedInSpriteModes(t *testing.T) {
	clips := []model.Clip{parsedClip("C3-Maj"), parsedClip("D3-Min")}

	for _, mode := range []plan.Mode{plan.Full, plan.MetaDurations} {
		timed := resolveDurations(clips, mode, flakyMeasure("C3-Maj.mp3"))

		assert := assert.New(t)
		assert.Equal(1, len(timed), "mode %v", mode)
		assert.Equal("D3-Min", timed[0].Clip.RawName)
		assert.Equal(1.2, timed[0].Duration)
	}
}

func TestUnreadableDurationsDefaultToZeroInPerFileModes(t *testing.T) {
	clips := []model.Clip{parsedClip("C3-Maj"), parsedClip("D3-Min")}

	for _, mode := range []plan.Mode{plan.PerFileProbed, plan.PerFileMeta} {
		timed := resolveDurations(clips, mode, flakyMeasure("C3-Maj.mp3"))

		assert := assert.New(t)
		assert.Equal(2, len(timed), "mode %v", mode)
		assert.Equal(0.0, timed[0].Duration)
		assert.Equal(1.2, timed[1].Duration)
	}
}

func TestDirStampChangesWhenClipsChange(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "C3-Maj.mp3"), []byte("x"), 0666); err != nil {
		t.Fatal(err)
	}

	before := dirStamp(dir)
	if err := os.WriteFile(filepath.Join(dir, "D3-Min.mp3"), []byte("x"), 0666); err != nil {
		t.Fatal(err)
	}
	after := dirStamp(dir)

	assert.NotEqual(t, before, after)
}

package sprite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/notesprite/group"
	"github.com/jsphweid/notesprite/model"
)

// Runner is the slice of the external toolchain a sprite build needs.
// The ffmpeg package satisfies it; tests swap in fakes.
type Runner struct {
	Normalize func(src, dst string) error
	Concat    func(listPath, dst string) error
	Encode    func(src, dst string) error
}

// Builder concatenates one group at a time into the output dir, keeping
// its intermediates in a per-run temp dir.
type Builder struct {
	Runner  Runner
	OutDir  string
	TempDir string
}

// BuildGroup normalizes, concatenates and encodes one tier's clips,
// returning the tier's index entries. Any toolchain failure abandons
// the whole tier; intermediates are removed either way.
func (b Builder) BuildGroup(g group.Grouped) (model.SpriteIndex, error) {
	spriteName := g.Def.Name + ".mp3"
	var transient []string
	defer func() {
		for _, p := range transient {
			if err := os.Remove(p); err != nil {
				fmt.Printf("Could not remove %v: %v\n", p, err)
			}
		}
	}()

	var intermediates []string
	for _, c := range g.Clips {
		dst := filepath.Join(b.TempDir, uuid.New().String()+".wav")
		if err := b.Runner.Normalize(c.Clip.SourcePath, dst); err != nil {
			return nil, fmt.Errorf("normalizing %v: %w", c.Clip.RawName, err)
		}
		transient = append(transient, dst)
		intermediates = append(intermediates, dst)
	}

	listPath := filepath.Join(b.TempDir, g.Def.Name+".txt")
	if err := writeConcatList(listPath, intermediates); err != nil {
		return nil, err
	}
	transient = append(transient, listPath)

	merged := filepath.Join(b.TempDir, g.Def.Name+".wav")
	if err := b.Runner.Concat(listPath, merged); err != nil {
		return nil, fmt.Errorf("concatenating %v: %w", g.Def.Name, err)
	}
	transient = append(transient, merged)

	if err := b.Runner.Encode(merged, filepath.Join(b.OutDir, spriteName)); err != nil {
		return nil, fmt.Errorf("encoding %v: %w", g.Def.Name, err)
	}

	return AccumulateOffsets(spriteName, g.Clips), nil
}

// writeConcatList writes an ffmpeg concat-demuxer list file. Single
// quotes in paths are escaped the way the demuxer expects.
func writeConcatList(path string, files []string) error {
	var sb strings.Builder
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			abs = f
		}
		escaped := strings.ReplaceAll(abs, "'", `'\''`)
		fmt.Fprintf(&sb, "file '%v'\n", escaped)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0666); err != nil {
		return fmt.Errorf("writing concat list: %w", err)
	}
	return nil
}

// WriteIndex serializes the merged index as JSON.
func WriteIndex(path string, index model.SpriteIndex) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jsphweid/notesprite/clip"
	"github.com/jsphweid/notesprite/constants"
	"github.com/jsphweid/notesprite/group"
	"github.com/jsphweid/notesprite/model"
	"github.com/jsphweid/notesprite/preview"
	"github.com/jsphweid/notesprite/util"
	"github.com/spf13/cobra"
)

var previewOutDir string

func init() {
	previewCmd.Flags().StringVar(&previewOutDir, "out", constants.GetSpritesDir(), "directory for preview midi files")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [clips dir]",
	Short: "Writes per-group midi previews",
	Long: `Writes one midi file per sprite group, a note per clip in sprite
order, so expected pitches can be auditioned against the built audio.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return runPreview(dir)
	},
}

func runPreview(dir string) error {
	paths, err := util.GatherClipPaths(dir)
	if err != nil {
		return fmt.Errorf("scanning %v: %w", dir, err)
	}
	clips, _ := clip.ParseAll(paths)
	if len(clips) == 0 {
		return fmt.Errorf("no clip filenames parsed in %v", dir)
	}

	if err := util.EnsureDir(previewOutDir); err != nil {
		return fmt.Errorf("creating preview directory: %w", err)
	}

	var timed []model.TimedClip
	for _, c := range clips {
		timed = append(timed, model.TimedClip{Clip: c})
	}
	for _, g := range group.Partition(timed, group.Tiers) {
		if len(g.Clips) == 0 {
			continue
		}
		path := filepath.Join(previewOutDir, g.Def.Name+".mid")
		if err := preview.Write(path, g.Clips); err != nil {
			fmt.Printf("Skipping preview for %v because: %v\n", g.Def.Name, err)
			continue
		}
		fmt.Printf("Wrote %v\n", path)
	}
	return nil
}

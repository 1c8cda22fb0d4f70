package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/notesprite/clip"
	"github.com/jsphweid/notesprite/constants"
	"github.com/jsphweid/notesprite/ffmpeg"
	"github.com/jsphweid/notesprite/group"
	"github.com/jsphweid/notesprite/meta"
	"github.com/jsphweid/notesprite/model"
	"github.com/jsphweid/notesprite/plan"
	"github.com/jsphweid/notesprite/sprite"
	"github.com/jsphweid/notesprite/util"
	"github.com/spf13/cobra"
)

var (
	buildSpritesDir string
	buildIndexPath  string
	buildWatch      bool
)

func init() {
	buildCmd.Flags().StringVar(&buildSpritesDir, "sprites-dir", constants.GetSpritesDir(), "directory for built sprite audio")
	buildCmd.Flags().StringVar(&buildIndexPath, "index", "", "index file path (default <sprites-dir>/"+constants.IndexFilename+")")
	buildCmd.Flags().BoolVar(&buildWatch, "watch", false, "rebuild when the clips directory changes")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build [clips dir]",
	Short: "Builds sprites and the index",
	Long:  `Builds sprites and the index`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if buildWatch {
			return watchAndBuild(dir)
		}
		return runBuild(dir)
	},
}

func indexPath() string {
	if buildIndexPath != "" {
		return buildIndexPath
	}
	return filepath.Join(buildSpritesDir, constants.IndexFilename)
}

func runBuild(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("clips directory %v does not exist", dir)
	}

	paths, err := util.GatherClipPaths(dir)
	if err != nil {
		return fmt.Errorf("scanning %v: %w", dir, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no clip files found in %v", dir)
	}

	clips, rejections := clip.ParseAll(paths)
	for _, r := range rejections {
		fmt.Printf("Skipping %v because: %v\n", r.Name, r.Reason)
	}
	if len(clips) == 0 {
		return fmt.Errorf("no clip filenames parsed (%v rejected)", len(rejections))
	}

	mode := plan.Detect()
	fmt.Printf("Toolchain mode: %v\n", mode)

	timed := resolveDurations(clips, mode, measureFor(mode))

	index := make(model.SpriteIndex)
	if mode.BuildsSprites() {
		if err := buildSprites(timed, index); err != nil {
			return err
		}
	} else {
		sprite.Merge(index, sprite.PerFileIndex(timed))
	}

	if err := util.EnsureDir(filepath.Dir(indexPath())); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}
	if err := sprite.WriteIndex(indexPath(), index); err != nil {
		return err
	}
	fmt.Printf("Wrote %v entries to %v\n", len(index), indexPath())
	return nil
}

// measureFor picks the mode's duration source: ffprobe when it is
// available, the embedded-metadata reader otherwise.
func measureFor(mode plan.Mode) func(string) (float64, error) {
	if mode == plan.MetaDurations || mode == plan.PerFileMeta {
		return meta.Duration
	}
	return ffmpeg.ProbeDuration
}

// resolveDurations applies the mode's duration strategy. In the sprite
// modes a clip with no readable duration is excluded (its offset math
// would corrupt the whole group); in the per-file modes it is kept with
// a zero duration since nothing downstream accumulates.
func resolveDurations(clips []model.Clip, mode plan.Mode, measure func(string) (float64, error)) []model.TimedClip {
	var res []model.TimedClip
	for _, c := range clips {
		dur, err := measure(c.SourcePath)
		if err != nil {
			if mode.BuildsSprites() {
				fmt.Printf("Skipping %v because: duration unreadable: %v\n", c.RawName, err)
				continue
			}
			fmt.Printf("No duration for %v, defaulting to 0: %v\n", c.RawName, err)
			dur = 0
		}
		res = append(res, model.TimedClip{Clip: c, Duration: dur})
	}
	return res
}

func buildSprites(timed []model.TimedClip, index model.SpriteIndex) error {
	if err := util.EnsureDir(buildSpritesDir); err != nil {
		return fmt.Errorf("creating sprites directory: %w", err)
	}
	tempDir, err := os.MkdirTemp("", "notesprite-")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tempDir); err != nil {
			fmt.Printf("Could not remove temp dir %v: %v\n", tempDir, err)
		}
	}()

	builder := sprite.Builder{
		Runner: sprite.Runner{
			Normalize: ffmpeg.Normalize,
			Concat:    ffmpeg.Concat,
			Encode:    ffmpeg.Encode,
		},
		OutDir:  buildSpritesDir,
		TempDir: tempDir,
	}

	for _, g := range group.Partition(timed, group.Tiers) {
		if len(g.Clips) == 0 {
			fmt.Printf("Skipping group %v: no matching clips\n", g.Def.Name)
			continue
		}
		entries, err := builder.BuildGroup(g)
		if err != nil {
			fmt.Printf("Abandoning group %v because: %v\n", g.Def.Name, err)
			continue
		}
		sprite.Merge(index, entries)
		var durations []float64
		for _, c := range g.Clips {
			durations = append(durations, c.Duration)
		}
		fmt.Printf("Built %v from %v clips (%.3fs)\n", g.Def.Name+".mp3", len(g.Clips), util.Sum(durations))
	}
	return nil
}

// watchAndBuild polls the clips directory and rebuilds after changes
// settle. Change bursts (a recording session saving many files) collapse
// into one rebuild via the debouncer.
func watchAndBuild(dir string) error {
	if err := runBuild(dir); err != nil {
		fmt.Printf("Build failed: %v\n", err)
	}

	rebuild := debounce.New(1500 * time.Millisecond)
	last := dirStamp(dir)
	fmt.Printf("Watching %v for changes...\n", dir)
	for {
		time.Sleep(time.Second)
		cur := dirStamp(dir)
		if cur == last {
			continue
		}
		last = cur
		rebuild(func() {
			if err := runBuild(dir); err != nil {
				fmt.Printf("Build failed: %v\n", err)
			}
		})
	}
}

func dirStamp(dir string) string {
	paths, err := util.GatherClipPaths(dir)
	if err != nil {
		return "error:" + err.Error()
	}
	var stamp string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		stamp += fmt.Sprintf("%v:%v:%v;", p, info.ModTime().UnixNano(), info.Size())
	}
	return stamp
}

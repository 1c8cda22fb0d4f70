package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsphweid/notesprite/clip"
	"github.com/jsphweid/notesprite/group"
	"github.com/jsphweid/notesprite/model"
	"github.com/jsphweid/notesprite/plan"
	"github.com/jsphweid/notesprite/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [clips dir]",
	Short: "Reports what a build would do",
	Long:  `Reports what a build would do`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return report(dir)
	},
}

func report(dir string) error {
	paths, err := util.GatherClipPaths(dir)
	if err != nil {
		return fmt.Errorf("scanning %v: %w", dir, err)
	}

	byExt := make(map[string]int)
	for _, p := range paths {
		byExt[strings.ToLower(filepath.Ext(p))]++
	}
	fmt.Printf("Candidates: %v\n", len(paths))
	for _, ext := range util.GetKeys(byExt) {
		fmt.Printf("  %v: %v\n", ext, byExt[ext])
	}

	clips, rejections := clip.ParseAll(paths)
	var resolved, unresolved int
	for _, c := range clips {
		if c.Key.Resolved {
			resolved++
		} else {
			unresolved++
		}
	}
	fmt.Printf("Parsed: %v (%v resolved keys, %v raw-name fallbacks)\n", len(clips), resolved, unresolved)
	fmt.Printf("Rejected: %v\n", len(rejections))
	for _, r := range rejections {
		fmt.Printf("  %v: %v\n", r.Name, r.Reason)
	}

	var timed []model.TimedClip
	for _, c := range clips {
		timed = append(timed, model.TimedClip{Clip: c})
	}
	for _, g := range group.Partition(timed, group.Tiers) {
		fmt.Printf("Group %v: %v clips\n", g.Def.Name, len(g.Clips))
	}

	fmt.Printf("Toolchain mode: %v\n", plan.Detect())
	return nil
}

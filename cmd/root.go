package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notesprite",
	Short: "Builds audio sprites for the ear trainer",
	Long: `Concatenates per-note clip recordings into tiered sprite files plus a
JSON index of offsets, so the web app fetches a few big files instead of
hundreds of small ones.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

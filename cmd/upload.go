package cmd

import (
	"github.com/jsphweid/notesprite/bucket"
	"github.com/jsphweid/notesprite/constants"
	"github.com/spf13/cobra"
)

var (
	uploadPrefix string
	uploadDir    string
)

func init() {
	uploadCmd.Flags().StringVar(&uploadPrefix, "prefix", "sprites", "key prefix inside the bucket")
	uploadCmd.Flags().StringVar(&uploadDir, "dir", constants.GetSpritesDir(), "directory to upload")
	rootCmd.AddCommand(uploadCmd)
}

var uploadCmd = &cobra.Command{
	Use:   "upload <bucket>",
	Short: "Uploads built sprites to S3",
	Long:  `Uploads built sprites to S3`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return bucket.UploadDir(args[0], uploadPrefix, uploadDir)
	},
}

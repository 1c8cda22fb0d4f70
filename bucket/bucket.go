// Package bucket publishes built sprites and the index to S3 for the
// production web app.
package bucket

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

var contentTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".json": "application/json",
	".mid":  "audio/midi",
}

// UploadDir pushes every file in dir to the bucket under prefix.
func UploadDir(bucketName, prefix, dir string) error {
	sess, err := session.NewSession(&aws.Config{})
	if err != nil {
		return fmt.Errorf("creating aws session: %w", err)
	}
	uploader := s3manager.NewUploader(sess)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %v: %w", dir, err)
	}

	var uploaded int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := uploadFile(uploader, bucketName, prefix, path); err != nil {
			return err
		}
		uploaded++
	}
	if uploaded == 0 {
		return fmt.Errorf("nothing to upload in %v", dir)
	}
	fmt.Printf("Uploaded %v files to s3://%v/%v\n", uploaded, bucketName, prefix)
	return nil
}

func uploadFile(uploader *s3manager.Uploader, bucketName, prefix, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %v: %w", path, err)
	}
	defer f.Close()

	key := filepath.Base(path)
	if prefix != "" {
		key = strings.TrimSuffix(prefix, "/") + "/" + key
	}

	input := &s3manager.UploadInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
		Body:   f,
	}
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		input.ContentType = aws.String(ct)
	}

	if _, err := uploader.Upload(input); err != nil {
		return fmt.Errorf("uploading %v: %w", key, err)
	}
	fmt.Printf("Uploaded %v\n", key)
	return nil
}

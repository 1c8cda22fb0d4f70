// Package ffmpeg wraps the external media toolchain. Every call blocks
// until the subprocess exits; a non-zero status is a hard failure for
// the step. There are no retries and no timeouts.
package ffmpeg

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/jsphweid/notesprite/constants"
)

func probeArgs(path string) []string {
	return []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
}

func normalizeArgs(src, dst string) []string {
	return []string{
		"-y",
		"-i", src,
		"-ar", strconv.Itoa(constants.SampleRate),
		"-ac", strconv.Itoa(constants.Channels),
		"-acodec", "pcm_s16le",
		"-loglevel", "error",
		dst,
	}
}

func concatArgs(listPath, dst string) []string {
	return []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		"-loglevel", "error",
		dst,
	}
}

func encodeArgs(src, dst string) []string {
	return []string{
		"-y",
		"-i", src,
		"-codec:a", "libmp3lame",
		"-qscale:a", constants.EncodeQuality,
		"-loglevel", "error",
		dst,
	}
}

// toolErr folds whatever the tool printed to stderr into the error so
// per-item diagnostics say why the step failed, not just its exit code.
func toolErr(tool string, err error, stderr *bytes.Buffer) error {
	msg := strings.TrimSpace(stderr.String())
	if msg != "" {
		return fmt.Errorf("%v: %w: %v", tool, err, msg)
	}
	return fmt.Errorf("%v: %w", tool, err)
}

func run(name string, args []string) error {
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return toolErr(name, err, &stderr)
	}
	return nil
}

// ProbeDuration asks ffprobe for a file's duration in seconds.
func ProbeDuration(path string) (float64, error) {
	cmd := exec.Command("ffprobe", probeArgs(path)...)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return 0, toolErr(fmt.Sprintf("ffprobe %v", path), err, &stderr)
	}
	s := strings.TrimSpace(out.String())
	if s == "" {
		return 0, fmt.Errorf("ffprobe %v: no duration", path)
	}
	dur, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %v: bad duration %q", path, s)
	}
	return dur, nil
}

// Normalize resamples one clip to the intermediate WAV format so the
// concat demuxer sees a uniform stream.
func Normalize(src, dst string) error {
	return run("ffmpeg", normalizeArgs(src, dst))
}

// Concat stream-copies the intermediates listed in the concat-demuxer
// list file into one WAV.
func Concat(listPath, dst string) error {
	return run("ffmpeg", concatArgs(listPath, dst))
}

// Encode produces the final MP3 sprite from the merged WAV.
func Encode(src, dst string) error {
	return run("ffmpeg", encodeArgs(src, dst))
}

// Package meta reads clip durations from embedded metadata, the
// secondary duration source used when ffprobe is missing.
package meta

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

// Duration returns a clip's length in seconds, dispatching on the file
// extension. m4a has no reader here, so those clips only resolve via
// ffprobe.
func Duration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wavDuration(f)
	case ".mp3":
		return mp3Duration(f)
	case ".ogg":
		return oggDuration(f)
	default:
		return 0, fmt.Errorf("no metadata reader for %v", filepath.Ext(path))
	}
}

// wavDuration assumes the canonical 44-byte header layout: byte rate at
// offset 28, data chunk size at offset 40.
func wavDuration(r io.Reader) (float64, error) {
	header := make([]byte, 44)
	if _, err := io.ReadFull(r, header); err != nil {
		return 0, fmt.Errorf("reading wav header: %w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return 0, fmt.Errorf("not a wav file")
	}
	byteRate := binary.LittleEndian.Uint32(header[28:32])
	dataSize := binary.LittleEndian.Uint32(header[40:44])
	if byteRate == 0 {
		return 0, fmt.Errorf("wav header has zero byte rate")
	}
	return float64(dataSize) / float64(byteRate), nil
}

func mp3Duration(r io.Reader) (float64, error) {
	d, err := mp3.NewDecoder(r)
	if err != nil {
		return 0, fmt.Errorf("decoding mp3: %w", err)
	}
	// the decoded stream is 16-bit stereo, 4 bytes per sample
	return float64(d.Length()) / float64(4*d.SampleRate()), nil
}

func oggDuration(r io.ReadSeeker) (float64, error) {
	or, err := oggvorbis.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("decoding ogg: %w", err)
	}
	return float64(or.Length()) / float64(or.SampleRate()), nil
}

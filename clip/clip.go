package clip

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/notesprite/constants"
	"github.com/jsphweid/notesprite/model"
)

// Clip filenames look like "Cs3-Maj.mp3": pitch letter, optional "s"
// sharp marker, octave (possibly negative), separator, chord quality.
// The separator is the last "-" so a negative octave's sign survives.
var pitchRe = regexp.MustCompile(`^([A-G])(s?)(-?\d+)$`)

// Standard 12-tone pitch class offsets, C=0 through B=11.
var pitchClass = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// MidiNumber maps a parsed pitch to its MIDI note number. C4 is 60.
func MidiNumber(letter byte, sharp bool, octave int) int {
	n := (octave+1)*12 + pitchClass[letter]
	if sharp {
		n++
	}
	return n
}

// Parse turns one candidate path into a Clip or a rejection reason.
// A missing separator rejects the file outright; an unparseable pitch
// token only degrades the key to the raw stem (the client can still
// play the clip, it just can't be addressed by MIDI number).
func Parse(path string) (model.Clip, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !constants.ClipExtensions[ext] {
		return model.Clip{}, fmt.Errorf("extension %q is not a clip extension", ext)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sep := strings.LastIndex(stem, "-")
	if sep <= 0 || sep == len(stem)-1 {
		return model.Clip{}, fmt.Errorf("name %q has no pitch/quality separator", stem)
	}

	c := model.Clip{
		SourcePath: path,
		RawName:    stem,
		Quality:    stem[sep+1:],
	}

	m := pitchRe.FindStringSubmatch(stem[:sep])
	if m == nil {
		// degraded key, not an error
		c.Key = model.Key{Value: stem, Resolved: false}
		return c, nil
	}

	octave, err := strconv.Atoi(m[3])
	if err != nil {
		c.Key = model.Key{Value: stem, Resolved: false}
		return c, nil
	}

	c.NoteLetter = m[1][0]
	c.Sharp = m[2] == "s"
	c.Octave = octave

	midi := MidiNumber(c.NoteLetter, c.Sharp, c.Octave)
	c.Key = model.Key{
		Value:    fmt.Sprintf("%v-%v", midi, c.Quality),
		Midi:     midi,
		Resolved: true,
	}
	return c, nil
}

// ParseAll parses every candidate, accumulating rejections for the
// diagnostic report instead of failing the run.
func ParseAll(paths []string) ([]model.Clip, []model.Rejection) {
	var clips []model.Clip
	var rejections []model.Rejection
	for _, p := range paths {
		c, err := Parse(p)
		if err != nil {
			rejections = append(rejections, model.Rejection{
				Name:   filepath.Base(p),
				Reason: err.Error(),
			})
			continue
		}
		clips = append(clips, c)
	}
	return clips, rejections
}

// Package preview writes a MIDI rendition of a sprite group so the
// expected pitches can be auditioned against the built audio.
package preview

import (
	"fmt"

	"github.com/jsphweid/notesprite/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 960
	// one quarter note per clip at the default tempo
	noteTicks = 960
	velocity  = 100
	channel   = 0
)

// Write emits one note per resolved clip, in sprite order. Unresolved
// clips have no MIDI number to play; clips outside the 0-127 MIDI range
// (extreme octaves parse fine but aren't representable) are skipped too.
func Write(path string, clips []model.TimedClip) error {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	var wrote bool
	for _, c := range clips {
		if !c.Clip.Key.Resolved {
			continue
		}
		if c.Clip.Key.Midi < 0 || c.Clip.Key.Midi > 127 {
			continue
		}
		key := uint8(c.Clip.Key.Midi)
		track.Add(0, midi.NoteOn(channel, key, velocity))
		track.Add(noteTicks, midi.NoteOff(channel, key))
		wrote = true
	}
	if !wrote {
		return fmt.Errorf("no resolved clips to preview")
	}
	track.Close(0)
	s.Tracks = append(s.Tracks, track)

	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("writing preview midi: %w", err)
	}
	return nil
}

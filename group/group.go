package group

import "github.com/jsphweid/notesprite/model"

// Def names one sprite tier. All short-circuits the quality table: the
// hard tier takes every clip by definition.
type Def struct {
	Name      string
	Qualities []string
	All       bool
}

// Tiers is the static partition table, in build order. A clip may land
// in several tiers; the index merge is last-tier-wins.
var Tiers = []Def{
	{Name: "easy", Qualities: []string{"Maj", "Min"}},
	{Name: "medium", Qualities: []string{"Maj", "Min", "Aug", "Dim"}},
	{Name: "hard", All: true},
}

type Grouped struct {
	Def   Def
	Clips []model.TimedClip
}

func (d Def) accepts(quality string) bool {
	if d.All {
		return true
	}
	for _, q := range d.Qualities {
		if q == quality {
			return true
		}
	}
	return false
}

// Partition assigns clips to tiers, preserving the enumeration order
// within each tier. Empty tiers are returned too; the caller skips them.
func Partition(clips []model.TimedClip, defs []Def) []Grouped {
	res := make([]Grouped, len(defs))
	for i, d := range defs {
		res[i].Def = d
		for _, c := range clips {
			if d.accepts(c.Clip.Quality) {
				res[i].Clips = append(res[i].Clips, c)
			}
		}
	}
	return res
}

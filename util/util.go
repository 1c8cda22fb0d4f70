package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jsphweid/notesprite/constants"
	"golang.org/x/exp/constraints"
)

// GatherClipPaths walks the clips directory collecting candidate audio
// files, skipping the reserved sprites subdirectory.
func GatherClipPaths(dir string) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == constants.ReservedDir && s != dir {
				return fs.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(s))
		if constants.ClipExtensions[ext] {
			res = append(res, s)
		}
		return nil
	}
	if err := filepath.WalkDir(dir, walk); err != nil {
		return nil, err
	}
	sort.Strings(res)
	return res, nil
}

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0777)
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Sum(nums []float64) float64 {
	var total float64
	for _, v := range nums {
		total += v
	}
	return total
}

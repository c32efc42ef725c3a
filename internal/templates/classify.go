package templates

import (
	"fmt"
	"io/fs"
	"strings"
)

// publicDir marks binary assets: anything below a directory with this name.
const publicDir = "public"

// Classify walks fsys depth-first and partitions its regular files into text
// and binary assets. Any walk error aborts the whole classification.
func Classify(fsys fs.FS) (*Assets, error) {
	assets := &Assets{}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rec := AssetRecord{RelativePath: p, Class: classOf(p)}
		if rec.Class == BinaryAsset {
			assets.Binary = append(assets.Binary, rec)
		} else {
			assets.Text = append(assets.Text, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("classifying template tree: %w", err)
	}
	return assets, nil
}

// classOf returns BinaryAsset when any directory segment of p is publicDir.
func classOf(p string) AssetClass {
	segments := strings.Split(p, "/")
	for _, dir := range segments[:len(segments)-1] {
		if dir == publicDir {
			return BinaryAsset
		}
	}
	return TextAsset
}

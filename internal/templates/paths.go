package templates

import (
	"path"
	"strings"
)

// Path transformation rules. All paths are slash-separated and relative.

// mascotMarker identifies mascot images; they ship only for the active locale.
const mascotMarker = "nulla"

// mascotRetargetMarker identifies mascot images that are renamed on copy.
const mascotRetargetMarker = "nulla-chan"

// mascotDestination is the fixed file name of a retargeted mascot image.
const mascotDestination = "nulla-chan.webp"

// RecoverName replaces the first underscore of the file name with a dot, so
// "package_json" becomes "package.json" and "_gitignore" becomes ".gitignore".
// Directory segments are left alone.
func RecoverName(rel string) string {
	dir, base := path.Split(rel)
	return dir + strings.Replace(base, "_", ".", 1)
}

// IsMascot reports whether the file name carries the mascot marker.
func IsMascot(rel string) bool {
	return strings.Contains(path.Base(rel), mascotMarker)
}

// MatchesLocale reports whether the file name contains the locale tag.
func MatchesLocale(rel, locale string) bool {
	return locale != "" && strings.Contains(path.Base(rel), locale)
}

// Destination returns the project-relative output path for a record.
// Text files get their name recovered; retargeted mascot images are renamed
// to mascotDestination within their own directory.
func Destination(rec AssetRecord) string {
	if rec.Class == TextAsset {
		return RecoverName(rec.RelativePath)
	}
	if strings.Contains(path.Base(rec.RelativePath), mascotRetargetMarker) {
		return path.Join(path.Dir(rec.RelativePath), mascotDestination)
	}
	return rec.RelativePath
}

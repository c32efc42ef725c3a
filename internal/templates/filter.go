package templates

import (
	"fmt"
	"path"
)

// Config files that only ship with their feature.
const (
	typescriptConfig = "tsconfig.json"
	tailwindConfig   = "tailwind.config.js"
)

// Include decides whether rec is part of a run with opts. When it is not, the
// reason names the rule that excluded it. Include is pure.
func Include(rec AssetRecord, opts Options) (bool, string) {
	p := rec.RelativePath
	base := path.Base(RecoverName(p))

	if path.Ext(p) == "."+opts.otherExtension() {
		return false, fmt.Sprintf("%s variant not selected", opts.otherExtension())
	}
	if !opts.UseAlternateLanguage && base == typescriptConfig {
		return false, "typescript not enabled"
	}
	if !opts.UseStylingAddOn && base == tailwindConfig {
		return false, "tailwind not enabled"
	}
	if rec.Class == BinaryAsset && IsMascot(p) && !MatchesLocale(p, opts.Locale) {
		return false, fmt.Sprintf("image for another locale than %s", opts.Locale)
	}
	return true, ""
}

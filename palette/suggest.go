package palette

import (
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Suggest returns the entry name closest to the given name by edit distance,
// used for "did you mean" hints on unknown colour names.
func (p *Palette) Suggest(name string) string {
	return lo.MinBy(p.Names(), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
}

// SuggestPalette returns the built-in palette name closest to the given name.
func SuggestPalette(name string) string {
	names := lo.Map(Builtins(), func(p *Palette, _ int) string {
		return p.Name()
	})
	return lo.MinBy(names, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
}

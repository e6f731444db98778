// Package theme substitutes palette colour names for rendered hex codes
// inside a plain-text template, producing a themed output file.
package theme

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/tinge-cli/tinge/filesystem"
	"github.com/tinge-cli/tinge/key"
	"github.com/tinge-cli/tinge/log"
	"github.com/tinge-cli/tinge/palette"
)

// normalizer strips the whitespace a template carries for readability:
// tab characters, newlines and the space following a colon.
var normalizer = strings.NewReplacer(": ", ":", "\t", "", "\n", "")

// Reference points at a template document and the palettes to substitute
// into it.
type Reference struct {
	path     string
	palettes []*palette.Palette
}

// NewReference constructs a Reference for the template at path.
func NewReference(path string) *Reference {
	return &Reference{path: path}
}

// UsePalettes selects the palettes whose entries are substituted, in order.
func (r *Reference) UsePalettes(palettes ...*palette.Palette) *Reference {
	r.palettes = palettes
	return r
}

// Normalise applies the whitespace normalization performed before
// substitution.
func Normalise(content string) string {
	return normalizer.Replace(content)
}

// Substitute replaces every literal occurrence of each palette entry name in
// content with the entry's hex rendering.
func (r *Reference) Substitute(content string) string {
	for _, p := range r.palettes {
		for _, e := range p.Entries() {
			content = strings.ReplaceAll(content, e.Name, e.Colour.ToHex())
		}
	}
	return content
}

// Export reads the template, normalizes its whitespace unless disabled by
// configuration, substitutes every palette entry and writes the result to
// path.
func (r *Reference) Export(path string) error {
	raw, err := filesystem.API().ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("read template %s: %w", r.path, err)
	}

	content := string(raw)
	if viper.GetBool(key.ExportMinify) {
		content = Normalise(content)
	}
	content = r.Substitute(content)

	if err = filesystem.API().WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write theme %s: %w", path, err)
	}

	log.Infof("exported theme %s from template %s", path, r.path)
	return nil
}

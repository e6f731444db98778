// Package palette maintains named, composable collections of colours.
//
// A palette is an ordered name to colour table. Extension is resolved at
// construction time into a flattened table, so enumeration and membership
// never walk an inheritance chain at runtime.
package palette

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tinge-cli/tinge/colour"
)

// Entry is a single named colour within a palette.
type Entry struct {
	Name   string
	Colour colour.Colour
}

// Palette is an immutable, ordered collection of named colours.
type Palette struct {
	name    string
	entries []Entry
	index   map[string]colour.Colour
}

// New constructs a palette from the given entries, preserving their order.
// When a name repeats, the first definition wins.
func New(name string, entries ...Entry) *Palette {
	p := &Palette{
		name:  name,
		index: make(map[string]colour.Colour, len(entries)),
	}
	for _, e := range entries {
		p.add(e)
	}
	return p
}

func (p *Palette) add(e Entry) {
	if _, ok := p.index[e.Name]; ok {
		return
	}
	p.entries = append(p.entries, e)
	p.index[e.Name] = e.Colour
}

// Extend derives a new palette that lists the given entries first, followed
// by the receiver's entries. A derived name shadows the inherited one; the
// flattened table is computed here, once.
func (p *Palette) Extend(name string, entries ...Entry) *Palette {
	derived := New(name, entries...)
	for _, e := range p.entries {
		derived.add(e)
	}
	return derived
}

// Name returns the palette identifier.
func (p *Palette) Name() string {
	return p.name
}

// Entries returns the ordered name to colour table: derived entries before
// inherited ones, with no duplicate names.
func (p *Palette) Entries() []Entry {
	return p.entries
}

// Names returns the entry names in table order.
func (p *Palette) Names() []string {
	return lo.Map(p.entries, func(e Entry, _ int) string {
		return e.Name
	})
}

// Get looks up a colour by its entry name.
func (p *Palette) Get(name string) (colour.Colour, bool) {
	c, ok := p.index[name]
	return c, ok
}

// Contains reports whether a structurally equal colour is present in the
// palette, own entries and inherited ones alike.
func (p *Palette) Contains(c colour.Colour) bool {
	return lo.ContainsBy(p.entries, func(e Entry) bool {
		return e.Colour == c
	})
}

// ByName resolves a built-in palette by its case-insensitive identifier.
func ByName(name string) mo.Option[*Palette] {
	for _, p := range Builtins() {
		if strings.EqualFold(p.Name(), name) {
			return mo.Some(p)
		}
	}
	return mo.None[*Palette]()
}

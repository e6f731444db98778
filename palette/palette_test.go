package palette

import (
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tinge-cli/tinge/colour"
)

func TestExtend(t *testing.T) {
	Convey("Palette extension", t, func() {
		base := New("base",
			Entry{"BLACK", rgb(0, 0, 0)},
			Entry{"WHITE", rgb(255, 255, 255)},
		)

		Convey("Derived entries come first, inherited after", func() {
			derived := base.Extend("derived",
				Entry{"ACCENT", hsl(210, 50, 60)},
			)

			So(derived.Names(), ShouldResemble, []string{"ACCENT", "BLACK", "WHITE"})
		})

		Convey("A derived name shadows its base without duplication", func() {
			derived := base.Extend("derived",
				Entry{"BLACK", rgb(1, 1, 1)},
			)

			So(derived.Names(), ShouldResemble, []string{"BLACK", "WHITE"})

			c, ok := derived.Get("BLACK")
			So(ok, ShouldBeTrue)
			So(c, ShouldResemble, colour.Colour(rgb(1, 1, 1)))
		})

		Convey("Extension never mutates the base", func() {
			before := base.Names()
			_ = base.Extend("derived", Entry{"EXTRA", rgb(9, 9, 9)})
			So(base.Names(), ShouldResemble, before)
		})
	})
}

func TestContains(t *testing.T) {
	Convey("Contains", t, func() {
		Convey("Matches structurally equal colours", func() {
			So(Default.Contains(rgb(0, 0, 0)), ShouldBeTrue)
			So(Default.Contains(rgb(1, 2, 3)), ShouldBeFalse)
		})

		Convey("Sees inherited entries", func() {
			So(Mariana.Contains(rgb(255, 255, 255)), ShouldBeTrue)
		})

		Convey("Distinguishes alpha variants", func() {
			shadow := lo.Must(rgb(0, 0, 0).Clone(mo.None[int](), mo.None[int](), mo.None[int](), mo.Some(50.0)))
			So(Default.Contains(shadow), ShouldBeTrue)
		})
	})
}

func TestBuiltins(t *testing.T) {
	Convey("Built-in palettes", t, func() {
		Convey("Default carries the four base entries", func() {
			So(Default.Names(), ShouldResemble, []string{"BLACK", "WHITE", "SHADOW", "TRANSPARENT"})
		})

		Convey("Mariana lists its own entries before the inherited ones", func() {
			names := Mariana.Names()
			So(len(names), ShouldEqual, 21)
			So(names[0], ShouldEqual, "MARIANA")
			So(names[17:], ShouldResemble, []string{"BLACK", "WHITE", "SHADOW", "TRANSPARENT"})
		})

		Convey("Mariana entries render their canonical hex codes", func() {
			for name, hex := range map[string]string{
				"MARIANA":     "#303841",
				"BLUE":        "#6699cc",
				"RED":         "#ec5f66",
				"SHADOW":      "#00000080",
				"TRANSPARENT": "#00000000",
			} {
				c, ok := Mariana.Get(name)
				So(ok, ShouldBeTrue)
				So(c.ToHex(), ShouldEqual, hex)
			}
		})

		Convey("ByName resolves case-insensitively", func() {
			So(ByName("MARIANA").IsPresent(), ShouldBeTrue)
			So(ByName("mariana").MustGet(), ShouldEqual, Mariana)
			So(ByName("nope").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestSuggest(t *testing.T) {
	Convey("Suggestions", t, func() {
		So(Mariana.Suggest("REd"), ShouldEqual, "RED")
		So(SuggestPalette("marianna"), ShouldEqual, "mariana")
	})
}

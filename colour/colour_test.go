package colour

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHex(t *testing.T) {
	Convey("Hex rendering", t, func() {
		Convey("Opaque colours render six digits", func() {
			So(lo.Must(RGB(0, 0, 0)).ToHex(), ShouldEqual, "#000000")
			So(lo.Must(RGB(255, 255, 255)).ToHex(), ShouldEqual, "#ffffff")
			So(lo.Must(RGB(48, 56, 65)).ToHex(), ShouldEqual, "#303841")
		})

		Convey("A present alpha below one appends two digits", func() {
			c := lo.Must(NewRGBA(mo.Some(255), mo.Some(0), mo.Some(0), mo.Some(0.5)))
			// 0.5 * 255 = 127.5 rounds up to 0x80
			So(c.ToHex(), ShouldEqual, "#ff000080")

			transparent := lo.Must(NewRGBA(mo.Some(0), mo.Some(0), mo.Some(0), mo.Some(0.0)))
			So(transparent.ToHex(), ShouldEqual, "#00000000")
		})

		Convey("An alpha of exactly one is omitted", func() {
			c := lo.Must(NewRGBA(mo.Some(0), mo.Some(0), mo.Some(0), mo.Some(1.0)))
			So(c.ToHex(), ShouldEqual, "#000000")
		})

		Convey("Both colour spaces share the renderer", func() {
			So(lo.Must(HSL(0, 100, 50)).ToHex(), ShouldEqual, "#ff0000")
			So(lo.Must(HSL(210, 50, 60)).ToHex(), ShouldEqual, "#6699cc")
		})

		Convey("Unset channels render as zero", func() {
			c := lo.Must(NewRGBA(mo.Some(255), mo.None[int](), mo.None[int](), mo.None[float64]()))
			So(c.ToHex(), ShouldEqual, "#ff0000")
		})
	})
}

func TestValidationError(t *testing.T) {
	Convey("ValidationError", t, func() {
		_, err := NewHSLA(mo.Some(400), mo.None[float64](), mo.None[float64](), mo.None[float64]())

		var validation *ValidationError
		So(errors.As(err, &validation), ShouldBeTrue)
		So(validation.Field, ShouldEqual, "hue")
		So(validation.Value, ShouldEqual, 400)
		So(validation.Range, ShouldEqual, "[0, 359]")
	})
}

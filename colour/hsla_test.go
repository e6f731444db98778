package colour

import (
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewHSLA(t *testing.T) {
	Convey("NewHSLA", t, func() {
		Convey("Should accept percentage and unit scale interchangeably", func() {
			percent := lo.Must(NewHSLA(mo.None[int](), mo.Some(50.0), mo.None[float64](), mo.None[float64]()))
			unit := lo.Must(NewHSLA(mo.None[int](), mo.Some(0.5), mo.None[float64](), mo.None[float64]()))
			So(percent, ShouldResemble, unit)
			So(percent.S.MustGet(), ShouldEqual, 0.5)
		})

		Convey("Should reject hue outside [0, 359]", func() {
			_, err := NewHSLA(mo.Some(360), mo.None[float64](), mo.None[float64](), mo.None[float64]())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "hue 360 not in range [0, 359]")
		})

		Convey("Should store an explicit zero hue, not treat it as unset", func() {
			c := lo.Must(NewHSLA(mo.Some(0), mo.None[float64](), mo.None[float64](), mo.None[float64]()))
			So(c.H.IsPresent(), ShouldBeTrue)
			So(c.H.MustGet(), ShouldEqual, 0)
		})

		Convey("Should validate an explicit zero saturation", func() {
			c := lo.Must(NewHSLA(mo.None[int](), mo.Some(0.0), mo.None[float64](), mo.None[float64]()))
			So(c.S.IsPresent(), ShouldBeTrue)
			So(c.S.MustGet(), ShouldEqual, 0)
		})

		Convey("Should reject out-of-range saturation and alpha", func() {
			_, err := NewHSLA(mo.None[int](), mo.Some(101.0), mo.None[float64](), mo.None[float64]())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "saturation 101 not in range [0, 100] or [0.0, 1.0]")

			_, err = NewHSLA(mo.None[int](), mo.None[float64](), mo.None[float64](), mo.Some(-0.1))
			So(err, ShouldNotBeNil)
		})

		Convey("Should leave unset fields unset", func() {
			c := lo.Must(NewHSLA(mo.Some(10), mo.None[float64](), mo.None[float64](), mo.None[float64]()))
			So(c.S.IsAbsent(), ShouldBeTrue)
			So(c.L.IsAbsent(), ShouldBeTrue)
			So(c.A.IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestHSLAClone(t *testing.T) {
	Convey("HSLA Clone", t, func() {
		original := lo.Must(HSL(210, 15, 22))

		Convey("Should inherit unspecified fields", func() {
			derived := lo.Must(original.Clone(mo.None[int](), mo.None[float64](), mo.Some(11.0), mo.None[float64]()))
			So(derived.H, ShouldResemble, original.H)
			So(derived.S, ShouldResemble, original.S)
			So(derived.L.MustGet(), ShouldEqual, 0.11)
		})

		Convey("Should never mutate the receiver", func() {
			before := original
			_ = lo.Must(original.Clone(mo.Some(0), mo.Some(1.0), mo.Some(1.0), mo.Some(1.0)))
			So(original, ShouldResemble, before)
		})

		Convey("Should validate overridden fields", func() {
			_, err := original.Clone(mo.Some(400), mo.None[float64](), mo.None[float64](), mo.None[float64]())
			So(err, ShouldNotBeNil)
		})

		Convey("Clone with no overrides equals the receiver", func() {
			derived := lo.Must(original.Clone(mo.None[int](), mo.None[float64](), mo.None[float64](), mo.None[float64]()))
			So(derived, ShouldResemble, original)
		})
	})
}

func TestHSLAToRGBA(t *testing.T) {
	Convey("HSLA to RGBA conversion", t, func() {
		Convey("Primaries land on exact channel values", func() {
			red := lo.Must(HSL(0, 100, 50)).ToRGBA()
			So(red, ShouldResemble, lo.Must(RGB(255, 0, 0)))

			green := lo.Must(HSL(120, 100, 50)).ToRGBA()
			So(green, ShouldResemble, lo.Must(RGB(0, 255, 0)))

			blue := lo.Must(HSL(240, 100, 50)).ToRGBA()
			So(blue, ShouldResemble, lo.Must(RGB(0, 0, 255)))
		})

		Convey("The Mariana base tone renders its canonical hex", func() {
			c := lo.Must(HSL(210, 15, 22))
			So(c.ToHex(), ShouldEqual, "#303841")
		})

		Convey("Alpha passes through unchanged", func() {
			c := lo.Must(NewHSLA(mo.Some(0), mo.Some(100.0), mo.Some(50.0), mo.Some(0.5)))
			So(c.ToRGBA().A.MustGet(), ShouldEqual, 0.5)
		})

		Convey("ToHSLA is the identity", func() {
			c := lo.Must(HSL(13, 93, 66))
			So(c.ToHSLA(), ShouldResemble, c)
		})
	})
}

func TestHSLARoundTrip(t *testing.T) {
	Convey("HSLA survives a round trip through RGBA", t, func() {
		cases := []struct {
			h    int
			s, l float64
		}{
			{357, 79, 65},
			{13, 93, 66},
			{210, 15, 22},
			{40, 94, 68},
			{114, 31, 68},
			{300, 30, 68},
		}

		for _, tc := range cases {
			original := lo.Must(HSL(tc.h, tc.s, tc.l))
			back := original.ToRGBA().ToHSLA()

			So(back.H.MustGet(), ShouldBeBetweenOrEqual, tc.h-1, tc.h+1)
			So(back.S.MustGet(), ShouldAlmostEqual, tc.s/100, 0.01)
			So(back.L.MustGet(), ShouldAlmostEqual, tc.l/100, 0.01)
		}
	})
}

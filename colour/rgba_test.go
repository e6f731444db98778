package colour

import (
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewRGBA(t *testing.T) {
	Convey("NewRGBA", t, func() {
		Convey("Should reject channels outside [0, 255]", func() {
			_, err := NewRGBA(mo.Some(256), mo.Some(0), mo.Some(0), mo.None[float64]())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "red 256 not in range [0, 255]")

			_, err = NewRGBA(mo.Some(0), mo.Some(-1), mo.Some(0), mo.None[float64]())
			So(err, ShouldNotBeNil)
		})

		Convey("Should store an explicit zero channel, not treat it as unset", func() {
			c := lo.Must(NewRGBA(mo.Some(0), mo.None[int](), mo.None[int](), mo.None[float64]()))
			So(c.R.IsPresent(), ShouldBeTrue)
			So(c.G.IsAbsent(), ShouldBeTrue)
		})

		Convey("Should normalize a percentage alpha to a unit fraction", func() {
			c := lo.Must(NewRGBA(mo.Some(0), mo.Some(0), mo.Some(0), mo.Some(50.0)))
			So(c.A.MustGet(), ShouldEqual, 0.5)
		})
	})
}

func TestRGBAClone(t *testing.T) {
	Convey("RGBA Clone", t, func() {
		original := lo.Must(RGB(0, 0, 0))

		Convey("Should inherit unspecified fields and never mutate the receiver", func() {
			before := original
			shadow := lo.Must(original.Clone(mo.None[int](), mo.None[int](), mo.None[int](), mo.Some(50.0)))

			So(original, ShouldResemble, before)
			So(shadow.R, ShouldResemble, original.R)
			So(shadow.A.MustGet(), ShouldEqual, 0.5)
		})

		Convey("Should validate overridden fields", func() {
			_, err := original.Clone(mo.Some(300), mo.None[int](), mo.None[int](), mo.None[float64]())
			So(err, ShouldNotBeNil)
		})
	})
}

func TestNormalise(t *testing.T) {
	Convey("Normalise", t, func() {
		r, g, b := lo.Must(RGB(255, 0, 51)).Normalise()
		So(r, ShouldEqual, 1.0)
		So(g, ShouldEqual, 0.0)
		So(b, ShouldEqual, 0.2)
	})
}

func TestRGBAToHSLA(t *testing.T) {
	Convey("RGBA to HSLA conversion", t, func() {
		Convey("Primaries produce exact hues", func() {
			red := lo.Must(RGB(255, 0, 0)).ToHSLA()
			So(red.H.MustGet(), ShouldEqual, 0)
			So(red.S.MustGet(), ShouldEqual, 1)
			So(red.L.MustGet(), ShouldEqual, 0.5)

			green := lo.Must(RGB(0, 255, 0)).ToHSLA()
			So(green.H.MustGet(), ShouldEqual, 120)

			blue := lo.Must(RGB(0, 0, 255)).ToHSLA()
			So(blue.H.MustGet(), ShouldEqual, 240)
		})

		Convey("Grays degenerate to zero hue and saturation", func() {
			black := lo.Must(RGB(0, 0, 0)).ToHSLA()
			So(black.H.MustGet(), ShouldEqual, 0)
			So(black.S.MustGet(), ShouldEqual, 0)
			So(black.L.MustGet(), ShouldEqual, 0)

			white := lo.Must(RGB(255, 255, 255)).ToHSLA()
			So(white.S.MustGet(), ShouldEqual, 0)
			So(white.L.MustGet(), ShouldEqual, 1)

			gray := lo.Must(RGB(128, 128, 128)).ToHSLA()
			So(gray.H.MustGet(), ShouldEqual, 0)
			So(gray.S.MustGet(), ShouldEqual, 0)
		})

		Convey("Negative hue offsets wrap into [0, 359]", func() {
			// green < blue with red dominant lands just below 360
			c := lo.Must(RGB(236, 95, 102)).ToHSLA()
			So(c.H.MustGet(), ShouldEqual, 357)
		})

		Convey("Alpha passes through unchanged", func() {
			c := lo.Must(NewRGBA(mo.Some(10), mo.Some(20), mo.Some(30), mo.Some(0.25)))
			So(c.ToHSLA().A.MustGet(), ShouldEqual, 0.25)
		})

		Convey("ToRGBA is the identity", func() {
			c := lo.Must(RGB(12, 34, 56))
			So(c.ToRGBA(), ShouldResemble, c)
		})
	})
}

func TestRGBARoundTrip(t *testing.T) {
	Convey("RGBA survives a round trip through HSLA", t, func() {
		cases := [][3]int{
			{12, 34, 56},
			{200, 100, 50},
			{17, 255, 89},
			{236, 95, 102},
			{48, 56, 65},
			{255, 255, 255},
			{0, 0, 0},
		}

		for _, tc := range cases {
			original := lo.Must(RGB(tc[0], tc[1], tc[2]))
			back := original.ToHSLA().ToRGBA()

			So(back.R.MustGet(), ShouldBeBetweenOrEqual, tc[0]-1, tc[0]+1)
			So(back.G.MustGet(), ShouldBeBetweenOrEqual, tc[1]-1, tc[1]+1)
			So(back.B.MustGet(), ShouldBeBetweenOrEqual, tc[2]-1, tc[2]+1)
		}
	})
}

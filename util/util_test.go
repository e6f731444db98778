package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "colour", "colours"), ShouldEqual, "1 colour")
		So(Quantify(2, "colour", "colours"), ShouldEqual, "2 colours")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("mariana"), ShouldEqual, "Mariana")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("themes/mariana-reference.json"), ShouldEqual, "mariana-reference")
		So(FileStem("template"), ShouldEqual, "template")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(0.2, 0.8, 0.5), ShouldEqual, 0.8)
		So(Min(0.2, 0.8, 0.5), ShouldEqual, 0.2)
	})
}

package filesystem

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBackendSwitching(t *testing.T) {
	Convey("Filesystem backend", t, func() {
		Convey("Defaults to the host filesystem", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Switches to an in-memory filesystem", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Round-trips a file through the in-memory backend", func() {
			SetMemMapFs()
			lo.Must0(API().WriteFile("probe.txt", []byte("#303841"), 0644))
			So(string(lo.Must(API().ReadFile("probe.txt"))), ShouldEqual, "#303841")
		})
	})
}

package scoring

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRound(t *testing.T) {
	Convey("TestRound", t, func() {
		Convey("rounding twice equals rounding once", func() {
			r := rand.New(rand.NewSource(7))
			for i := 0; i < 10000; i++ {
				v := r.Float64()
				So(Round(Round(v)), ShouldEqual, Round(v))
			}
		})

		Convey("noise below the precision disappears", func() {
			So(Round(0.1+1e-15), ShouldEqual, 0.1)
			So(Round(0), ShouldEqual, 0)
			So(Round(1), ShouldEqual, 1)
		})
	})
}

func TestG1(t *testing.T) {
	Convey("TestG1", t, func() {
		So(G1(1, 10), ShouldEqual, 0.1)
		So(G1(0, 10), ShouldEqual, 0)
		So(G1(3, 0), ShouldEqual, 0)
		So(G1(6, 6), ShouldEqual, 1)
		// 超过int32的行对数
		So(G1(float64(int64(1)<<40), int64(1)<<42), ShouldEqual, 0.25)
	})
}

func TestFdScore(t *testing.T) {
	Convey("TestFdScore", t, func() {
		So(FdScore(0, 0), ShouldEqual, 1)
		So(FdScore(0, 1), ShouldEqual, 0.5)
		So(FdScore(0.5, 1), ShouldBeLessThan, FdScore(0.5, 0))
	})
}

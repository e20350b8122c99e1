package confidence

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestInterval(t *testing.T) {
	Convey("TestInterval", t, func() {
		ci := New(0.1, 0.2, 0.4)

		Convey("point intervals", func() {
			p := Point(0.3)
			So(p.IsPoint(), ShouldBeTrue)
			So(p.Min(), ShouldEqual, 0.3)
			So(p.Max(), ShouldEqual, 0.3)
			So(ci.IsPoint(), ShouldBeFalse)
		})

		Convey("multiply keeps ordering", func() {
			scaled := ci.Multiply(10)
			So(scaled.Min(), ShouldAlmostEqual, 1)
			So(scaled.Mean(), ShouldAlmostEqual, 2)
			So(scaled.Max(), ShouldAlmostEqual, 4)

			flipped := ci.Multiply(-1)
			So(flipped.Min(), ShouldAlmostEqual, -0.4)
			So(flipped.Mean(), ShouldAlmostEqual, -0.2)
			So(flipped.Max(), ShouldAlmostEqual, -0.1)
		})

		Convey("plus adds element-wise", func() {
			sum := ci.Plus(Point(1))
			So(sum.Min(), ShouldAlmostEqual, 1.1)
			So(sum.Mean(), ShouldAlmostEqual, 1.2)
			So(sum.Max(), ShouldAlmostEqual, 1.4)
		})

		Convey("map applies a monotone transform", func() {
			half := ci.Map(func(v float64) float64 { return v / 2 })
			So(half.Min(), ShouldAlmostEqual, 0.05)
			So(half.Max(), ShouldAlmostEqual, 0.2)
		})

		Convey("contains", func() {
			So(ci.Contains(0.1), ShouldBeTrue)
			So(ci.Contains(0.4), ShouldBeTrue)
			So(ci.Contains(0.41), ShouldBeFalse)
		})

		Convey("illegal ordering panics", func() {
			So(func() { New(0.5, 0.2, 0.9) }, ShouldPanic)
			So(func() { New(0.1, 0.2, 0.1) }, ShouldPanic)
		})

		Convey("string", func() {
			So(Point(0.25).String(), ShouldEqual, "0.250")
			So(ci.String(), ShouldEqual, "0.200 (0.100..0.400)")
		})
	})
}

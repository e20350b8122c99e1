package sample

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"rds-pfd/partial_fd/pli"
	"rds-pfd/partial_fd/relation"
)

func newRelation(columns [][]int32) *relation.RelationData {
	names := []string{"A", "B", "C", "D", "E"}[:len(columns)]
	data, err := relation.NewRelationDataFromValueIds("t0", names, columns, true)
	if err != nil {
		panic(err)
	}
	return data
}

func randomColumn(r *rand.Rand, numRows, numValues int) []int32 {
	column := make([]int32, numRows)
	for i := range column {
		column[i] = int32(r.Intn(numValues))
	}
	return column
}

// bruteForceMixed 两两比较，统计在lhs上一致且在rhs上不一致的行对比例
func bruteForceMixed(columns [][]int32, lhs []int, rhs int) float64 {
	numRows := len(columns[0])
	violations := 0
	for i := 0; i < numRows; i++ {
		for j := i + 1; j < numRows; j++ {
			agree := true
			for _, c := range lhs {
				if columns[c][i] != columns[c][j] {
					agree = false
					break
				}
			}
			if agree && columns[rhs][i] != columns[rhs][j] {
				violations++
			}
		}
	}
	return float64(violations) / float64(pli.Pairs(numRows))
}

func TestExactSample(t *testing.T) {
	Convey("TestExactSample", t, func() {
		data := newRelation([][]int32{
			{1, 1, 2, 2, 3},
			{10, 10, 10, 20, 30},
		})
		cache := pli.NewCache(data)
		schema := data.Schema()
		a := schema.VerticalOf(0)
		b := schema.VerticalOf(1)

		s := CreateFocusedSample(data, a, cache.GetOrCreateFor(a), 100, rand.New(rand.NewSource(1)))
		So(s.IsExact(), ShouldBeTrue)
		So(s.Population(), ShouldEqual, 2)
		So(s.SampleSize(), ShouldEqual, 2)

		estimate := s.EstimateMixed(a, b, 0.9)
		So(estimate.IsPoint(), ShouldBeTrue)
		So(estimate.Mean(), ShouldAlmostEqual, 0.1)

		unfocused := CreateFocusedSample(data, schema.EmptyVertical, cache.GetOrCreateFor(schema.EmptyVertical), 100, rand.New(rand.NewSource(1)))
		So(unfocused.IsExact(), ShouldBeTrue)
		So(unfocused.SampleSize(), ShouldEqual, 10)
		So(unfocused.EstimateMixed(a, b, 0.9).Mean(), ShouldAlmostEqual, 0.1)
		// 空lhs：B上取值相同的只有行0,1,2之间的3对，10-3=7
		So(unfocused.EstimateMixed(schema.EmptyVertical, b, 0.9).Mean(), ShouldAlmostEqual, 0.7)

		Convey("focus must be covered by the estimated vertical", func() {
			So(func() { s.EstimateMixed(schema.EmptyVertical, b, 0.9) }, ShouldPanic)
		})
	})
}

func TestIntervalSoundness(t *testing.T) {
	Convey("TestIntervalSoundness", t, func() {
		r := rand.New(rand.NewSource(42))
		columns := [][]int32{
			randomColumn(r, 300, 5),
			randomColumn(r, 300, 3),
			randomColumn(r, 300, 2),
		}
		data := newRelation(columns)
		cache := pli.NewCache(data)
		schema := data.Schema()

		cases := []struct {
			focus []int
			lhs   []int
		}{
			{focus: nil, lhs: []int{0}},
			{focus: []int{0}, lhs: []int{0}},
			{focus: []int{0}, lhs: []int{0, 2}},
		}
		const trials = 40
		for _, tc := range cases {
			focus := schema.VerticalOf(tc.focus...)
			lhs := schema.VerticalOf(tc.lhs...)
			focusPli := cache.GetOrCreateFor(focus)
			exact := bruteForceMixed(columns, tc.lhs, 1)

			covered := 0
			for trial := 0; trial < trials; trial++ {
				s := CreateFocusedSample(data, focus, focusPli, 150, rand.New(rand.NewSource(int64(trial+1))))
				So(s.IsExact(), ShouldBeFalse)
				estimate := s.EstimateMixed(lhs, schema.VerticalOf(1), 0.95)
				So(estimate.Min(), ShouldBeLessThanOrEqualTo, estimate.Mean())
				So(estimate.Mean(), ShouldBeLessThanOrEqualTo, estimate.Max())
				if estimate.Contains(exact) {
					covered++
				}
			}
			So(covered, ShouldBeGreaterThanOrEqualTo, trials*8/10)
		}
	})
}

func TestRegistryBestFor(t *testing.T) {
	Convey("TestRegistryBestFor", t, func() {
		r := rand.New(rand.NewSource(3))
		data := newRelation([][]int32{
			randomColumn(r, 100, 4),
			randomColumn(r, 100, 20),
			randomColumn(r, 100, 2),
		})
		cache := pli.NewCache(data)
		schema := data.Schema()
		registry := BuildRegistry(data, cache, 50, rand.New(rand.NewSource(3)))
		So(registry.Len(), ShouldEqual, 4)

		best, ok := registry.BestFor(schema.EmptyVertical)
		So(ok, ShouldBeTrue)
		So(best.Focus().IsEmpty(), ShouldBeTrue)

		best, ok = registry.BestFor(schema.VerticalOf(0))
		So(ok, ShouldBeTrue)
		So(best.Focus().Equal(schema.VerticalOf(0)), ShouldBeTrue)

		// B的值更多，聚焦在B上的行对更少
		best, ok = registry.BestFor(schema.VerticalOf(0, 1, 2))
		So(ok, ShouldBeTrue)
		So(best.Focus().Equal(schema.VerticalOf(1)), ShouldBeTrue)

		_, ok = NewRegistry().BestFor(schema.VerticalOf(0))
		So(ok, ShouldBeFalse)
	})
}

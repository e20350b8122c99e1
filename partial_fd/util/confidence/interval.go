package confidence

import (
	"fmt"
)

// Interval 不确定量的区间估计，始终满足 min <= mean <= max
type Interval struct {
	min  float64
	mean float64
	max  float64
}

// New 区间两端顺序不对说明上游算错了，直接panic
func New(min, mean, max float64) Interval {
	if !(min <= mean && mean <= max) {
		panic(fmt.Sprintf("illegal confidence interval (%v, %v, %v)", min, mean, max))
	}
	return Interval{min: min, mean: mean, max: max}
}

// Point 精确值，区间退化成一个点
func Point(value float64) Interval {
	return Interval{min: value, mean: value, max: value}
}

func (ci Interval) Min() float64 {
	return ci.min
}

func (ci Interval) Mean() float64 {
	return ci.mean
}

func (ci Interval) Max() float64 {
	return ci.max
}

// IsPoint 区间是否退化成精确值
func (ci Interval) IsPoint() bool {
	return ci.min == ci.max
}

// Multiply 乘以常数，负数时交换两端
func (ci Interval) Multiply(factor float64) Interval {
	if factor < 0 {
		return Interval{min: ci.max * factor, mean: ci.mean * factor, max: ci.min * factor}
	}
	return Interval{min: ci.min * factor, mean: ci.mean * factor, max: ci.max * factor}
}

func (ci Interval) Plus(other Interval) Interval {
	return Interval{min: ci.min + other.min, mean: ci.mean + other.mean, max: ci.max + other.max}
}

// Map 对三个值分别做单调不减变换，顺序保持不变
func (ci Interval) Map(f func(float64) float64) Interval {
	return New(f(ci.min), f(ci.mean), f(ci.max))
}

func (ci Interval) Contains(value float64) bool {
	return ci.min <= value && value <= ci.max
}

func (ci Interval) String() string {
	if ci.IsPoint() {
		return fmt.Sprintf("%.3f", ci.mean)
	}
	return fmt.Sprintf("%.3f (%.3f..%.3f)", ci.mean, ci.min, ci.max)
}

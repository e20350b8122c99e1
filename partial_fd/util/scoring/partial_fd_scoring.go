package scoring

import (
	"math"

	"rds-pfd/rds_config"
)

// Round 截掉一部分精度，避免行对数很大时的浮点误差影响判定。多次调用结果不变
func Round(g1 float64) float64 {
	return math.Round(g1*rds_config.G1RoundScale) / rds_config.G1RoundScale
}

// G1 违反行对数 / 总行对数，总行对数为0（少于两行）时为0
func G1(numViolatingTuplePairs float64, numTuplePairs int64) float64 {
	if numTuplePairs == 0 {
		return 0
	}
	return Round(numViolatingTuplePairs / float64(numTuplePairs))
}

// FdScore 默认的依赖打分：误差越小、lhs越短分越高，取值 (0,1]
func FdScore(g1 float64, lhsArity int) float64 {
	return (1 - g1) / float64(1+lhsArity)
}

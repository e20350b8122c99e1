package rds_config

// 默认高级配置，请求里对应的字段>0时覆盖
const (
	MaxError           = float64(0.01) // g1 误差上限
	Deviation          = float64(0)    // 估计值超过 MaxError+Deviation 才直接判定为非依赖
	EstimateConfidence = float64(0.9)  // 抽样估计的置信度
	SampleSize         = 1000          // 每个抽样的行对数，<=0 不抽样
	SampleSeed         = int64(0)      // 0 表示按时间取种子
	MaxArity           = 4             // lhs 最多几列
	NullEqualsNull     = true          // 空值之间是否相等

	MaxArityNoLimit = -1
)

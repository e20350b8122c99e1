package rds_config

const GinPort = "19124"

const ProjectName = "rds-pfd"

// MAXCpuNum 同时跑的 rhs 协程数上限
const MAXCpuNum = 16

// NilIndex nil 值索引
const NilIndex = int32(-1)

// G1RoundScale g1 保留 12 位小数，抹掉大行对数带来的浮点误差
const G1RoundScale = 1e12

// 没有抽样时的估计区间
const (
	UnknownErrorMin  = float64(0)
	UnknownErrorMean = float64(0.5)
	UnknownErrorMax  = float64(1)
)

// 结果文件
const (
	ResultDir       = "result"
	ResultExtension = ".yml"
)

package main

import (
	"rds-pfd/partial_fd/core"
	"rds-pfd/rock-share/base/config"
)

type PFDRequest struct {
	Path       string   `json:"path" binding:"required"`
	MaxError   *float64 `json:"max_error"` // 0表示只找精确依赖，所以用指针区分没传
	Confidence float64  `json:"confidence"`
	SampleSize int      `json:"sample_size"`
	MaxArity   int      `json:"max_arity"`
	Rhs        []string `json:"rhs"` // 为空时所有列都作为rhs
}

// Configuration 默认值 <- 配置文件 <- 请求参数
func (r *PFDRequest) Configuration(pfd config.PfdConfig) core.Configuration {
	c := core.DefaultConfiguration()
	if pfd.MaxError > 0 {
		c.MaxError = pfd.MaxError
	}
	if pfd.Deviation > 0 {
		c.Deviation = pfd.Deviation
	}
	if pfd.EstimateConfidence > 0 {
		c.EstimateConfidence = pfd.EstimateConfidence
	}
	if pfd.SampleSize != 0 {
		c.SampleSize = pfd.SampleSize
	}
	if pfd.SampleSeed != 0 {
		c.SampleSeed = pfd.SampleSeed
	}
	if pfd.MaxArity != 0 {
		c.MaxArity = pfd.MaxArity
	}
	if pfd.NullEqualsNull != nil {
		c.NullEqualsNull = *pfd.NullEqualsNull
	}
	c.Parallelism = pfd.Parallelism

	if r.MaxError != nil {
		c.MaxError = *r.MaxError
	}
	if r.Confidence > 0 {
		c.EstimateConfidence = r.Confidence
	}
	if r.SampleSize > 0 {
		c.SampleSize = r.SampleSize
	}
	if r.MaxArity > 0 {
		c.MaxArity = r.MaxArity
	}
	return c
}

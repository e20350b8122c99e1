package core

import (
	"rds-pfd/rds_config"
	"rds-pfd/utils"
)

// Configuration 一次发现任务的参数
type Configuration struct {
	MaxError           float64 `mapstructure:"max_error" json:"max_error" yaml:"max_error"`
	Deviation          float64 `mapstructure:"deviation" json:"deviation" yaml:"deviation"`
	EstimateConfidence float64 `mapstructure:"estimate_confidence" json:"estimate_confidence" yaml:"estimate_confidence"`
	SampleSize         int     `mapstructure:"sample_size" json:"sample_size" yaml:"sample_size"`
	SampleSeed         int64   `mapstructure:"sample_seed" json:"sample_seed" yaml:"sample_seed"`
	MaxArity           int     `mapstructure:"max_arity" json:"max_arity" yaml:"max_arity"`
	NullEqualsNull     bool    `mapstructure:"null_equals_null" json:"null_equals_null" yaml:"null_equals_null"`
	Parallelism        int     `mapstructure:"parallelism" json:"parallelism" yaml:"parallelism"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		MaxError:           rds_config.MaxError,
		Deviation:          rds_config.Deviation,
		EstimateConfidence: rds_config.EstimateConfidence,
		SampleSize:         rds_config.SampleSize,
		SampleSeed:         rds_config.SampleSeed,
		MaxArity:           rds_config.MaxArity,
		NullEqualsNull:     rds_config.NullEqualsNull,
	}
}

// Validate 参数检查，置信度必须在(0,1)之间
func (c Configuration) Validate() error {
	if c.MaxError < 0 || c.MaxError > 1 {
		return utils.ErrParameter.With("max_error must be in [0,1]")
	}
	if c.Deviation < 0 {
		return utils.ErrParameter.With("deviation must not be negative")
	}
	if c.EstimateConfidence <= 0 || c.EstimateConfidence >= 1 {
		return utils.ErrParameter.With("estimate_confidence must be in (0,1)")
	}
	if c.MaxArity == 0 || c.MaxArity < rds_config.MaxArityNoLimit {
		return utils.ErrParameter.With("max_arity must be positive or -1")
	}
	return nil
}

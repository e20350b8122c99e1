package core

import (
	"math/rand"
	"time"

	"rds-pfd/partial_fd/model"
	"rds-pfd/partial_fd/pli"
	"rds-pfd/partial_fd/relation"
	"rds-pfd/partial_fd/sample"
	"rds-pfd/partial_fd/util/scoring"
	"rds-pfd/rock-share/base/logger"
)

// PliCache 策略只用到缓存的这两个操作
type PliCache interface {
	Get(vertical model.Vertical) (*pli.PositionListIndex, bool)
	GetOrCreateFor(vertical model.Vertical) *pli.PositionListIndex
}

// SampleRegistry 给属性集挑选最合适的抽样
type SampleRegistry interface {
	BestFor(vertical model.Vertical) (sample.AgreeSetSample, bool)
}

// FdScorer 给发现的依赖打分，分数只用于排序展示
type FdScorer func(lhs model.Vertical, rhs *model.Column, g1 float64) float64

func DefaultFdScorer(lhs model.Vertical, _ *model.Column, g1 float64) float64 {
	return scoring.FdScore(g1, lhs.Arity())
}

// ProfilingContext 一次发现任务中所有策略共享的数据，构造之后只有计数器和分区缓存会变化
type ProfilingContext struct {
	Configuration   Configuration
	RelationData    *relation.RelationData
	PliCache        PliCache
	AgreeSetSamples SampleRegistry // 没有抽样时为nil
	ProfilingData   *ProfilingData
	FdScorer        FdScorer
}

// NewProfilingContext 建分区缓存，SampleSize大于0时建抽样
func NewProfilingContext(configuration Configuration, data *relation.RelationData) *ProfilingContext {
	ctx := &ProfilingContext{
		Configuration: configuration,
		RelationData:  data,
		ProfilingData: NewProfilingData(),
		FdScorer:      DefaultFdScorer,
	}
	cache := pli.NewCache(data)
	cache.SetObserver(ctx.ProfilingData.AddPliIntersection)
	ctx.PliCache = cache

	if configuration.SampleSize > 0 {
		seed := configuration.SampleSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		start := time.Now()
		registry := sample.BuildRegistry(data, cache, configuration.SampleSize, rand.New(rand.NewSource(seed)))
		ctx.ProfilingData.AddSampleCreation(time.Since(start), registry.Len())
		ctx.AgreeSetSamples = registry
		logger.Infof("finish create agree set samples, num:%d, size:%d, spent:%v", registry.Len(), configuration.SampleSize, time.Since(start))
	}
	return ctx
}

// GetAgreeSetSample 没有配置抽样或没有可用抽样时返回false
func (c *ProfilingContext) GetAgreeSetSample(vertical model.Vertical) (sample.AgreeSetSample, bool) {
	if c.AgreeSetSamples == nil {
		return nil, false
	}
	return c.AgreeSetSamples.BestFor(vertical)
}

func (c *ProfilingContext) RateFdScore(lhs model.Vertical, rhs *model.Column, g1 float64) float64 {
	if c.FdScorer == nil {
		return DefaultFdScorer(lhs, rhs, g1)
	}
	return c.FdScorer(lhs, rhs, g1)
}

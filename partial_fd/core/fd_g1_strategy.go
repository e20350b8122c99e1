package core

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"rds-pfd/partial_fd/model"
	"rds-pfd/partial_fd/pli"
	"rds-pfd/partial_fd/util/confidence"
	"rds-pfd/partial_fd/util/scoring"
	"rds-pfd/rds_config"
	"rds-pfd/rock-share/base/logger"
)

// FdG1Strategy 以g1为误差度量的函数依赖策略，一个目标列一个实例
type FdG1Strategy struct {
	thresholds
	rhs     *model.Column
	context *ProfilingContext

	initMu      sync.Mutex
	initialized atomic.Bool
}

func NewFdG1Strategy(rhs *model.Column, maxError, deviation float64, context *ProfilingContext) *FdG1Strategy {
	return &FdG1Strategy{
		thresholds: thresholds{maxError: maxError, deviation: deviation},
		rhs:        rhs,
		context:    context,
	}
}

// FdG1StrategyFactory 阈值取自上下文的配置
func FdG1StrategyFactory(rhs *model.Column, context *ProfilingContext) DependencyStrategy {
	return NewFdG1Strategy(rhs, context.Configuration.MaxError, context.Configuration.Deviation, context)
}

func (s *FdG1Strategy) Rhs() *model.Column {
	return s.rhs
}

func (s *FdG1Strategy) EnsureInitialized(space *SearchSpace) {
	if s.initialized.Load() {
		return
	}
	s.initMu.Lock()
	defer s.initMu.Unlock()
	if s.initialized.Load() {
		return
	}

	emptyVertical := s.rhs.Schema().EmptyVertical
	g1 := s.CalculateError(emptyVertical)
	space.AddLaunchPad(NewDependencyCandidate(emptyVertical, confidence.Point(g1), true))
	s.initialized.Store(true)
	logger.Debugf("strategy %v initialized, g1 of empty lhs:%v", s, g1)
}

func (s *FdG1Strategy) CalculateError(lhs model.Vertical) float64 {
	start := time.Now()
	var g1 float64
	if lhs.Arity() == 0 {
		g1 = s.errorOfEmptyLhs()
	} else {
		lhsPli := s.context.PliCache.GetOrCreateFor(lhs)
		if jointPli, ok := s.context.PliCache.Get(lhs.Union(s.rhs.AsVertical())); ok {
			g1 = s.errorFromJointPli(lhsPli, jointPli)
		} else {
			g1 = s.errorFromProbing(lhsPli)
		}
	}
	s.context.ProfilingData.AddExactNanos(time.Since(start))
	s.context.ProfilingData.IncExactCount()
	return g1
}

// errorOfEmptyLhs 空lhs下所有行在一个簇里，rhs上取值不同的行对都是违反的
func (s *FdG1Strategy) errorOfEmptyLhs() float64 {
	rhsPli, ok := s.context.PliCache.Get(s.rhs.AsVertical())
	if !ok {
		logger.Errorf("pli of rhs %v is not cached", s.rhs)
		panic(fmt.Sprintf("pli of rhs %v is not cached", s.rhs))
	}
	return s.calculateG1(float64(rhsPli.DisagreeingPairs()))
}

// errorFromJointPli lhs上一致的行对里，去掉在lhs∪rhs上也一致的，剩下的就是违反的
func (s *FdG1Strategy) errorFromJointPli(lhsPli, jointPli *pli.PositionListIndex) float64 {
	return s.calculateG1(float64(lhsPli.AgreeingPairs() - jointPli.AgreeingPairs()))
}

func (s *FdG1Strategy) errorFromProbing(lhsPli *pli.PositionListIndex) float64 {
	probes := s.context.RelationData.ProbingTable(s.rhs.Index())
	return s.calculateG1(float64(lhsPli.CountViolations(probes, pli.NewValueCounter())))
}

func (s *FdG1Strategy) calculateG1(numViolatingTuplePairs float64) float64 {
	return scoring.G1(numViolatingTuplePairs, s.context.RelationData.NumTuplePairs())
}

// CreateDependencyCandidate 先估计违反行对的比例，乘以总行对数，再对区间三个值分别算g1
func (s *FdG1Strategy) CreateDependencyCandidate(lhs model.Vertical) DependencyCandidate {
	if s.context.AgreeSetSamples == nil {
		return NewDependencyCandidate(lhs, unknownError(), false)
	}

	start := time.Now()
	agreeSetSample, ok := s.context.GetAgreeSetSample(lhs)
	if !ok {
		return NewDependencyCandidate(lhs, unknownError(), false)
	}
	numViolatingTuplePairs := agreeSetSample.
		EstimateMixed(lhs, s.rhs.AsVertical(), s.context.Configuration.EstimateConfidence).
		Multiply(float64(s.context.RelationData.NumTuplePairs()))
	g1 := numViolatingTuplePairs.Map(s.calculateG1)
	s.context.ProfilingData.AddEstimateNanos(time.Since(start))
	s.context.ProfilingData.IncEstimateCount()
	return NewDependencyCandidate(lhs, g1, true)
}

func unknownError() confidence.Interval {
	return confidence.New(rds_config.UnknownErrorMin, rds_config.UnknownErrorMean, rds_config.UnknownErrorMax)
}

func (s *FdG1Strategy) Format(lhs model.Vertical) string {
	return fmt.Sprintf("%s→%s", lhs, s.rhs)
}

func (s *FdG1Strategy) RegisterDependency(lhs model.Vertical, g1 float64, consumer DependencyConsumer) {
	s.context.ProfilingData.IncDependencyCount()
	s.context.ProfilingData.AddDependencyArity(lhs.Arity())
	consumer.RegisterFd(lhs, s.rhs, g1, s.context.RateFdScore(lhs, s.rhs, g1))
}

func (s *FdG1Strategy) IsIrrelevantColumn(columnIndex int) bool {
	return s.rhs.Index() == columnIndex
}

func (s *FdG1Strategy) NumIrrelevantColumns() int {
	return 1
}

func (s *FdG1Strategy) IrrelevantColumns() model.Vertical {
	return s.rhs.AsVertical()
}

func (s *FdG1Strategy) String() string {
	return fmt.Sprintf("FD[RHS=%s, g1≤(%.3f..%.3f)]", s.rhs.Name(), s.MinNonDependencyError(), s.MaxDependencyError())
}

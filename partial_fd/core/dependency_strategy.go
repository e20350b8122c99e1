package core

import (
	"math"
	"sync"

	"rds-pfd/partial_fd/model"
	"rds-pfd/partial_fd/util/confidence"
)

// DependencyStrategy 针对一种误差度量和一个目标列（rhs）的搜索策略。
// 同一个实例会被多个协程并发调用，除EnsureInitialized外都不需要额外加锁。
type DependencyStrategy interface {
	// EnsureInitialized 第一次调用时把空属性集作为起点放进搜索空间，之后的调用什么也不做，
	// 传入别的搜索空间也一样
	EnsureInitialized(space *SearchSpace)
	// CalculateError 精确误差
	CalculateError(lhs model.Vertical) float64
	// CreateDependencyCandidate 用抽样估计误差区间
	CreateDependencyCandidate(lhs model.Vertical) DependencyCandidate
	Format(lhs model.Vertical) string
	RegisterDependency(lhs model.Vertical, g1 float64, consumer DependencyConsumer)
	IsIrrelevantColumn(columnIndex int) bool
	NumIrrelevantColumns() int
	IrrelevantColumns() model.Vertical
	// MaxDependencyError 误差不超过它就是依赖
	MaxDependencyError() float64
	// MinNonDependencyError 误差超过它就一定不是依赖
	MinNonDependencyError() float64
	String() string
}

// DependencyConsumer 接收发现的依赖
type DependencyConsumer interface {
	RegisterFd(lhs model.Vertical, rhs *model.Column, g1 float64, score float64)
}

// DependencyCandidate 等待判定的属性集
type DependencyCandidate struct {
	Vertical model.Vertical
	Error    confidence.Interval
	IsExact  bool // 只有区间退化为单点时才可能为true
}

func NewDependencyCandidate(vertical model.Vertical, err confidence.Interval, isExact bool) DependencyCandidate {
	return DependencyCandidate{Vertical: vertical, Error: err, IsExact: isExact && err.IsPoint()}
}

// SearchSpace 一个策略的起点集合
type SearchSpace struct {
	mu         sync.Mutex
	launchPads []DependencyCandidate
}

func NewSearchSpace() *SearchSpace {
	return &SearchSpace{}
}

// AddLaunchPad 由EnsureInitialized调用。策略只会播种一次，
// 换一个新的SearchSpace再调用EnsureInitialized不会再加起点，所以一个策略只能用于一个搜索空间
func (s *SearchSpace) AddLaunchPad(candidate DependencyCandidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.launchPads = append(s.launchPads, candidate)
}

func (s *SearchSpace) LaunchPads() []DependencyCandidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	pads := make([]DependencyCandidate, len(s.launchPads))
	copy(pads, s.launchPads)
	return pads
}

// thresholds 所有度量共用的判定阈值
type thresholds struct {
	maxError  float64
	deviation float64
}

func (t thresholds) MaxDependencyError() float64 {
	return t.maxError
}

func (t thresholds) MinNonDependencyError() float64 {
	return math.Min(1, t.maxError+t.deviation)
}

// StrategyFactory 按目标列创建策略
type StrategyFactory func(rhs *model.Column, ctx *ProfilingContext) DependencyStrategy

// CreateStrategies 给每个目标列建一个策略，targets为空时所有列都作为目标
func CreateStrategies(ctx *ProfilingContext, factory StrategyFactory, targets ...*model.Column) []DependencyStrategy {
	if len(targets) == 0 {
		targets = ctx.RelationData.Schema().Columns()
	}
	strategies := make([]DependencyStrategy, 0, len(targets))
	for _, rhs := range targets {
		strategies = append(strategies, factory(rhs, ctx))
	}
	return strategies
}

package search

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sort"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set"

	"rds-pfd/partial_fd/core"
	"rds-pfd/partial_fd/model"
	"rds-pfd/rds_config"
	"rds-pfd/rock-share/base/logger"
)

// Searcher 逐层搜索每个rhs的最小依赖。所有rhs共享一个ProfilingContext
type Searcher struct {
	context  *core.ProfilingContext
	consumer core.DependencyConsumer
	maxArity int
}

func NewSearcher(context *core.ProfilingContext, consumer core.DependencyConsumer) *Searcher {
	return &Searcher{
		context:  context,
		consumer: consumer,
		maxArity: context.Configuration.MaxArity,
	}
}

// Discover 每个策略一个协程，协程数受Parallelism限制。ctx取消后不再开始新的一层
func (s *Searcher) Discover(ctx context.Context, strategies []core.DependencyStrategy) error {
	startTime := time.Now()
	tokens := GenTokenChan(s.context.Configuration.Parallelism)
	errs := make([]error, len(strategies))
	wg := sync.WaitGroup{}
	for i, strategy := range strategies {
		select {
		case <-ctx.Done():
			errs[i] = ctx.Err()
			continue
		case <-tokens:
		}
		wg.Add(1)
		go func(i int, strategy core.DependencyStrategy) {
			defer wg.Done()
			defer func() {
				if err := recover(); err != nil {
					logger.Errorf("recover.err:%v, stack:\n%v", err, string(debug.Stack()))
					errs[i] = fmt.Errorf("search %v failed: %v", strategy, err)
				}
				tokens <- struct{}{}
			}()
			t := time.Now()
			errs[i] = s.searchRhs(ctx, strategy)
			logger.Infof("finish search %v, spent:%v", strategy, time.Since(t))
		}(i, strategy)
	}
	wg.Wait()
	logger.Infof("finish search %d rhs, spent:%v", len(strategies), time.Since(startTime))
	return errors.Join(errs...)
}

func (s *Searcher) searchRhs(ctx context.Context, strategy core.DependencyStrategy) error {
	space := core.NewSearchSpace()
	strategy.EnsureInitialized(space)
	for _, launchPad := range space.LaunchPads() {
		if launchPad.IsExact && launchPad.Error.Mean() <= strategy.MaxDependencyError() {
			strategy.RegisterDependency(launchPad.Vertical, launchPad.Error.Mean(), s.consumer)
			return nil
		}
	}

	schema := s.context.RelationData.Schema()
	var level []model.Vertical
	for _, column := range schema.Columns() {
		if !strategy.IsIrrelevantColumn(column.Index()) {
			level = append(level, column.AsVertical())
		}
	}

	for arity := 1; len(level) > 0; arity++ {
		if s.maxArity != rds_config.MaxArityNoLimit && arity > s.maxArity {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		candidates := make([]core.DependencyCandidate, 0, len(level))
		for _, vertical := range level {
			candidates = append(candidates, strategy.CreateDependencyCandidate(vertical))
		}
		// 估计误差小的先算
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Error.Mean() < candidates[j].Error.Mean()
		})

		nonDependencies := make([]model.Vertical, 0, len(candidates))
		for _, candidate := range candidates {
			g1, isDependency := resolve(strategy, candidate)
			if isDependency {
				strategy.RegisterDependency(candidate.Vertical, g1, s.consumer)
				logger.Debugf("found %v, g1:%v", strategy.Format(candidate.Vertical), g1)
			} else {
				nonDependencies = append(nonDependencies, candidate.Vertical)
			}
		}
		level = nextLevel(nonDependencies)
	}
	return nil
}

// resolve 估计是精确值或者下界已经超过阈值时直接用估计下结论，否则算精确误差
func resolve(strategy core.DependencyStrategy, candidate core.DependencyCandidate) (float64, bool) {
	var g1 float64
	switch {
	case candidate.IsExact:
		g1 = candidate.Error.Mean()
	case candidate.Error.Min() > strategy.MinNonDependencyError():
		return candidate.Error.Min(), false
	default:
		g1 = strategy.CalculateError(candidate.Vertical)
	}
	return g1, g1 <= strategy.MaxDependencyError()
}

// nextLevel 前缀相同的两个非依赖合并成下一层的候选，所有子集都是非依赖时才保留
func nextLevel(nonDependencies []model.Vertical) []model.Vertical {
	known := mapset.NewThreadUnsafeSet()
	indexes := make([][]int, len(nonDependencies))
	for i, vertical := range nonDependencies {
		known.Add(vertical.Key())
		indexes[i] = vertical.ColumnIndexes()
	}
	order := make([]int, len(nonDependencies))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return lessIndexes(indexes[order[i]], indexes[order[j]])
	})

	var next []model.Vertical
	for i := 0; i < len(order); i++ {
		a := indexes[order[i]]
		for j := i + 1; j < len(order); j++ {
			b := indexes[order[j]]
			if !samePrefix(a, b) {
				break
			}
			candidate := nonDependencies[order[i]].Union(nonDependencies[order[j]])
			if allParentsKnown(candidate, known) {
				next = append(next, candidate)
			}
		}
	}
	return next
}

func lessIndexes(a, b []int) bool {
	for k := 0; k < len(a) && k < len(b); k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return len(a) < len(b)
}

// samePrefix 除最后一列外都相同
func samePrefix(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for k := 0; k < len(a)-1; k++ {
		if a[k] != b[k] {
			return false
		}
	}
	return true
}

func allParentsKnown(candidate model.Vertical, known mapset.Set) bool {
	for _, columnIndex := range candidate.ColumnIndexes() {
		if !known.Contains(candidate.Without(columnIndex).Key()) {
			return false
		}
	}
	return true
}

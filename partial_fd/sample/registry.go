package sample

import (
	"math/rand"

	"rds-pfd/partial_fd/model"
	"rds-pfd/partial_fd/pli"
	"rds-pfd/partial_fd/relation"
)

// Registry 一次运行中所有的抽样，运行前构造好，运行中只读
type Registry struct {
	samples []AgreeSetSample
}

func NewRegistry(samples ...AgreeSetSample) *Registry {
	return &Registry{samples: samples}
}

// BuildRegistry 建一个不聚焦的抽样，再给每一列建一个聚焦在该列上的抽样
func BuildRegistry(data *relation.RelationData, cache *pli.Cache, sampleSize int, rng *rand.Rand) *Registry {
	schema := data.Schema()
	r := &Registry{samples: make([]AgreeSetSample, 0, schema.NumColumns()+1)}
	r.samples = append(r.samples, CreateFocusedSample(data, schema.EmptyVertical, cache.GetOrCreateFor(schema.EmptyVertical), sampleSize, rng))
	for _, column := range schema.Columns() {
		focus := column.AsVertical()
		r.samples = append(r.samples, CreateFocusedSample(data, focus, cache.GetOrCreateFor(focus), sampleSize, rng))
	}
	return r
}

func (r *Registry) Len() int {
	return len(r.samples)
}

func (r *Registry) Samples() []AgreeSetSample {
	return r.samples
}

// BestFor focus是vertical子集的抽样里，选focus列最多的；一样多时选行对总数小的（抽样更密）
func (r *Registry) BestFor(vertical model.Vertical) (AgreeSetSample, bool) {
	var best AgreeSetSample
	for _, s := range r.samples {
		if !s.Focus().IsSubsetOf(vertical) {
			continue
		}
		if best == nil ||
			s.Focus().Arity() > best.Focus().Arity() ||
			(s.Focus().Arity() == best.Focus().Arity() && s.Population() < best.Population()) {
			best = s
		}
	}
	return best, best != nil
}

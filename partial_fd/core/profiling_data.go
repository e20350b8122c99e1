package core

import (
	"context"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// ProfilingData 运行期间的计数器，所有搜索协程并发累加，只增不减
type ProfilingData struct {
	errorCalculationNanos atomic.Int64
	numErrorCalculations  atomic.Int64
	errorEstimationNanos  atomic.Int64
	numErrorEstimations   atomic.Int64
	numDependencies       atomic.Int64
	dependencyArity       atomic.Int64
	pliIntersectionNanos  atomic.Int64
	numPliIntersections   atomic.Int64
	sampleCreationNanos   atomic.Int64
	numSamplesCreated     atomic.Int64
}

// ProfilingSnapshot 某一时刻计数器的值
type ProfilingSnapshot struct {
	ErrorCalculationNanos int64 `json:"error_calculation_nanos" yaml:"error_calculation_nanos"`
	NumErrorCalculations  int64 `json:"num_error_calculations" yaml:"num_error_calculations"`
	ErrorEstimationNanos  int64 `json:"error_estimation_nanos" yaml:"error_estimation_nanos"`
	NumErrorEstimations   int64 `json:"num_error_estimations" yaml:"num_error_estimations"`
	NumDependencies       int64 `json:"num_dependencies" yaml:"num_dependencies"`
	DependencyArity       int64 `json:"dependency_arity" yaml:"dependency_arity"`
	PliIntersectionNanos  int64 `json:"pli_intersection_nanos" yaml:"pli_intersection_nanos"`
	NumPliIntersections   int64 `json:"num_pli_intersections" yaml:"num_pli_intersections"`
	SampleCreationNanos   int64 `json:"sample_creation_nanos" yaml:"sample_creation_nanos"`
	NumSamplesCreated     int64 `json:"num_samples_created" yaml:"num_samples_created"`
}

func NewProfilingData() *ProfilingData {
	return &ProfilingData{}
}

func (p *ProfilingData) AddExactNanos(elapsed time.Duration) {
	p.errorCalculationNanos.Add(elapsed.Nanoseconds())
}

func (p *ProfilingData) IncExactCount() {
	p.numErrorCalculations.Add(1)
}

func (p *ProfilingData) AddEstimateNanos(elapsed time.Duration) {
	p.errorEstimationNanos.Add(elapsed.Nanoseconds())
}

func (p *ProfilingData) IncEstimateCount() {
	p.numErrorEstimations.Add(1)
}

func (p *ProfilingData) IncDependencyCount() {
	p.numDependencies.Add(1)
}

func (p *ProfilingData) AddDependencyArity(arity int) {
	p.dependencyArity.Add(int64(arity))
}

func (p *ProfilingData) AddPliIntersection(elapsed time.Duration) {
	p.pliIntersectionNanos.Add(elapsed.Nanoseconds())
	p.numPliIntersections.Add(1)
}

func (p *ProfilingData) AddSampleCreation(elapsed time.Duration, numSamples int) {
	p.sampleCreationNanos.Add(elapsed.Nanoseconds())
	p.numSamplesCreated.Add(int64(numSamples))
}

func (p *ProfilingData) Snapshot() ProfilingSnapshot {
	return ProfilingSnapshot{
		ErrorCalculationNanos: p.errorCalculationNanos.Load(),
		NumErrorCalculations:  p.numErrorCalculations.Load(),
		ErrorEstimationNanos:  p.errorEstimationNanos.Load(),
		NumErrorEstimations:   p.numErrorEstimations.Load(),
		NumDependencies:       p.numDependencies.Load(),
		DependencyArity:       p.dependencyArity.Load(),
		PliIntersectionNanos:  p.pliIntersectionNanos.Load(),
		NumPliIntersections:   p.numPliIntersections.Load(),
		SampleCreationNanos:   p.sampleCreationNanos.Load(),
		NumSamplesCreated:     p.numSamplesCreated.Load(),
	}
}

// RegisterMetrics 把计数器注册成可观测计数器，采集时直接读原子值。任务结束后调用方负责Unregister
func (p *ProfilingData) RegisterMetrics(meter metric.Meter) (metric.Registration, error) {
	counters := []struct {
		name        string
		description string
		unit        string
		value       *atomic.Int64
	}{
		{"pfd.error_calculation.duration", "time spent on exact error calculation", "ns", &p.errorCalculationNanos},
		{"pfd.error_calculation.count", "number of exact error calculations", "1", &p.numErrorCalculations},
		{"pfd.error_estimation.duration", "time spent on error estimation", "ns", &p.errorEstimationNanos},
		{"pfd.error_estimation.count", "number of error estimations", "1", &p.numErrorEstimations},
		{"pfd.dependency.count", "number of registered dependencies", "1", &p.numDependencies},
		{"pfd.dependency.arity", "total lhs arity of registered dependencies", "1", &p.dependencyArity},
		{"pfd.pli_intersection.duration", "time spent on pli intersection", "ns", &p.pliIntersectionNanos},
		{"pfd.pli_intersection.count", "number of pli intersections", "1", &p.numPliIntersections},
		{"pfd.sample_creation.duration", "time spent on agree set sampling", "ns", &p.sampleCreationNanos},
		{"pfd.sample_creation.count", "number of agree set samples", "1", &p.numSamplesCreated},
	}
	instruments := make([]metric.Int64ObservableCounter, 0, len(counters))
	observables := make([]metric.Observable, 0, len(counters))
	for _, c := range counters {
		counter, err := meter.Int64ObservableCounter(c.name, metric.WithDescription(c.description), metric.WithUnit(c.unit))
		if err != nil {
			return nil, err
		}
		instruments = append(instruments, counter)
		observables = append(observables, counter)
	}
	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		for i, counter := range instruments {
			o.ObserveInt64(counter, counters[i].value.Load())
		}
		return nil
	}, observables...)
}

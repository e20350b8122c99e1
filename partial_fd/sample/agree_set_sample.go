package sample

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	mapset "github.com/deckarep/golang-set"
	"github.com/yourbasic/bit"
	"gonum.org/v1/gonum/stat/distuv"

	"rds-pfd/partial_fd/model"
	"rds-pfd/partial_fd/pli"
	"rds-pfd/partial_fd/relation"
	"rds-pfd/partial_fd/util/confidence"
)

// AgreeSetSample 行对一致集的抽样统计，用来估计在一组列上一致、在另一组列上不一致的行对比例
type AgreeSetSample interface {
	// Focus 抽样只在这个属性集取值相同的行对里进行
	Focus() model.Vertical
	// Population focus上取值相同的行对总数
	Population() int64
	SampleSize() int
	// EstimateMixed 在agreeOn上一致、在disagreeOn每一列上都不一致的行对占全部行对的比例
	EstimateMixed(agreeOn, disagreeOn model.Vertical, confidenceLevel float64) confidence.Interval
}

type agreeSetCount struct {
	agreeSet *bit.Set
	count    int
}

// ListAgreeSetSample 把抽到的行对按一致集去重后计数保存，构造后只读
type ListAgreeSetSample struct {
	focus      model.Vertical
	population int64
	totalPairs int64
	sampleSize int
	exact      bool // population不超过抽样数时所有行对都在里面，估计是精确值
	agreeSets  []agreeSetCount
}

// CreateFocusedSample 在focusPli的簇内抽sampleSize个不同的行对。
// 簇按行对数加权选取，簇内行对均匀选取。
func CreateFocusedSample(data *relation.RelationData, focus model.Vertical, focusPli *pli.PositionListIndex, sampleSize int, rng *rand.Rand) *ListAgreeSetSample {
	s := &ListAgreeSetSample{
		focus:      focus,
		population: focusPli.AgreeingPairs(),
		totalPairs: data.NumTuplePairs(),
	}
	counts := map[string]*agreeSetCount{}
	add := func(rowA, rowB int32) {
		agreeSet := agreeSetOf(data, rowA, rowB)
		key := agreeSet.String()
		if c, ok := counts[key]; ok {
			c.count++
		} else {
			counts[key] = &agreeSetCount{agreeSet: agreeSet, count: 1}
		}
		s.sampleSize++
	}

	if s.population <= int64(sampleSize) {
		s.exact = true
		for _, cluster := range focusPli.Clusters() {
			for i := 0; i < len(cluster); i++ {
				for j := i + 1; j < len(cluster); j++ {
					add(cluster[i], cluster[j])
				}
			}
		}
	} else {
		clusters := focusPli.Clusters()
		cumulative := make([]int64, len(clusters))
		var pairSum int64
		for i, cluster := range clusters {
			pairSum += pli.Pairs(len(cluster))
			cumulative[i] = pairSum
		}
		sampled := mapset.NewThreadUnsafeSet()
		for sampled.Cardinality() < sampleSize {
			target := rng.Int63n(pairSum)
			clusterIndex := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > target })
			cluster := clusters[clusterIndex]
			i := rng.Intn(len(cluster))
			j := rng.Intn(len(cluster) - 1)
			if j >= i {
				j++
			}
			rowA, rowB := cluster[i], cluster[j]
			if rowA > rowB {
				rowA, rowB = rowB, rowA
			}
			if sampled.Add(int64(rowA)<<32 | int64(rowB)) {
				add(rowA, rowB)
			}
		}
	}

	s.agreeSets = make([]agreeSetCount, 0, len(counts))
	for _, c := range counts {
		s.agreeSets = append(s.agreeSets, *c)
	}
	sort.Slice(s.agreeSets, func(i, j int) bool { return s.agreeSets[i].count > s.agreeSets[j].count })
	return s
}

// agreeSetOf 两行取值相同的列
func agreeSetOf(data *relation.RelationData, rowA, rowB int32) *bit.Set {
	agreeSet := new(bit.Set)
	for columnIndex := 0; columnIndex < data.NumColumns(); columnIndex++ {
		probes := data.ProbingTable(columnIndex)
		if probes[rowA].SameCluster(probes[rowB]) {
			agreeSet.Add(columnIndex)
		}
	}
	return agreeSet
}

func (s *ListAgreeSetSample) Focus() model.Vertical {
	return s.focus
}

func (s *ListAgreeSetSample) Population() int64 {
	return s.population
}

func (s *ListAgreeSetSample) SampleSize() int {
	return s.sampleSize
}

func (s *ListAgreeSetSample) IsExact() bool {
	return s.exact
}

func (s *ListAgreeSetSample) EstimateMixed(agreeOn, disagreeOn model.Vertical, confidenceLevel float64) confidence.Interval {
	if !s.focus.IsSubsetOf(agreeOn) {
		panic(fmt.Sprintf("sample focused on %v cannot estimate %v", s.focus, agreeOn))
	}
	if s.totalPairs == 0 || s.sampleSize == 0 {
		return confidence.Point(0)
	}

	agreeBits := bit.New(agreeOn.ColumnIndexes()...)
	disagreeBits := bit.New(disagreeOn.ColumnIndexes()...)
	hits := 0
	for _, c := range s.agreeSets {
		if agreeBits.Subset(c.agreeSet) && new(bit.Set).SetAnd(c.agreeSet, disagreeBits).Empty() {
			hits += c.count
		}
	}

	if s.exact {
		return confidence.Point(float64(hits) / float64(s.totalPairs))
	}
	// 抽样比例 -> 全部行对上的比例
	populationRatio := float64(s.population) / float64(s.totalPairs)
	return wilson(hits, s.sampleSize, confidenceLevel).Multiply(populationRatio)
}

// wilson 二项比例的Wilson区间，区间一定包含观测值
func wilson(hits, n int, confidenceLevel float64) confidence.Interval {
	p := float64(hits) / float64(n)
	z := distuv.UnitNormal.Quantile(1 - (1-confidenceLevel)/2)
	nn := float64(n)
	denominator := 1 + z*z/nn
	center := (p + z*z/(2*nn)) / denominator
	halfWidth := z * math.Sqrt(p*(1-p)/nn+z*z/(4*nn*nn)) / denominator
	lower := math.Max(0, math.Min(p, center-halfWidth))
	upper := math.Min(1, math.Max(p, center+halfWidth))
	return confidence.New(lower, p, upper)
}

package pli

import "rds-pfd/partial_fd/model"

// ValueCounter 统计一个簇内各rhs簇号出现次数，簇与簇之间复用同一个map
type ValueCounter struct {
	counts map[int32]int64
}

func NewValueCounter() *ValueCounter {
	return &ValueCounter{counts: make(map[int32]int64, 16)}
}

func (c *ValueCounter) reset() {
	clear(c.counts)
}

// CountViolations 统计在当前分区上取值相同、但在rhs上取值不同的行对数。
// 每个簇贡献 C(簇大小,2) - Σ C(rhs相同的组大小,2)；rhs为单值的行不计入分组，但仍计入簇大小。
func (p *PositionListIndex) CountViolations(rhsProbes []model.Probe, counter *ValueCounter) int64 {
	if counter == nil {
		counter = NewValueCounter()
	}
	var numViolations int64
	for _, cluster := range p.clusters {
		counter.reset()
		for _, rowId := range cluster {
			if clusterId, ok := rhsProbes[rowId].ClusterId(); ok {
				counter.counts[clusterId]++
			}
		}
		numViolationsInCluster := pairs(len(cluster))
		for _, refinedClusterSize := range counter.counts {
			numViolationsInCluster -= refinedClusterSize * (refinedClusterSize - 1) / 2
		}
		numViolations += numViolationsInCluster
	}
	return numViolations
}

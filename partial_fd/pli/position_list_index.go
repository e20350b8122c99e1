package pli

import (
	"sort"

	"rds-pfd/partial_fd/model"
	"rds-pfd/rds_config"
)

// PositionListIndex 剥离分区：只保存大小>=2的等价类（簇），单值行不存。
// 每个簇里的行号升序，簇之间按首行号升序。发布到缓存后只读。
type PositionListIndex struct {
	clusters      [][]int32
	numRows       int
	size          int   // 落在簇里的行数
	agreeingPairs int64 // 簇内行对数之和
}

// New 直接用簇构造，大小<2的簇会被丢掉
func New(clusters [][]int32, numRows int) *PositionListIndex {
	kept := make([][]int32, 0, len(clusters))
	for _, cluster := range clusters {
		if len(cluster) < 2 {
			continue
		}
		sorted := append([]int32(nil), cluster...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		kept = append(kept, sorted)
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i][0] < kept[j][0] })
	return newSorted(kept, numRows)
}

func newSorted(clusters [][]int32, numRows int) *PositionListIndex {
	p := &PositionListIndex{clusters: clusters, numRows: numRows}
	for _, cluster := range clusters {
		p.size += len(cluster)
		p.agreeingPairs += pairs(len(cluster))
	}
	return p
}

// ForValues 根据一列的索引值建分区。NilIndex是空值，nullEqualsNull为false时每个空值都单独成类
func ForValues(valueIds []int32, nullEqualsNull bool) *PositionListIndex {
	value2Rows := make(map[int32][]int32)
	for rowId, valueId := range valueIds {
		if valueId == rds_config.NilIndex && !nullEqualsNull {
			continue
		}
		value2Rows[valueId] = append(value2Rows[valueId], int32(rowId))
	}
	clusters := make([][]int32, 0, len(value2Rows))
	for _, rowIds := range value2Rows {
		if len(rowIds) > 1 {
			clusters = append(clusters, rowIds)
		}
	}
	// 行号是按顺序追加的，簇内已经有序
	sort.Slice(clusters, func(i, j int) bool { return clusters[i][0] < clusters[j][0] })
	return newSorted(clusters, len(valueIds))
}

// ForWholeRelation 空属性集的分区，所有行在同一个簇
func ForWholeRelation(numRows int) *PositionListIndex {
	if numRows < 2 {
		return newSorted(nil, numRows)
	}
	cluster := make([]int32, numRows)
	for i := range cluster {
		cluster[i] = int32(i)
	}
	return newSorted([][]int32{cluster}, numRows)
}

// Clusters 返回内部的簇，调用方不能修改
func (p *PositionListIndex) Clusters() [][]int32 {
	return p.clusters
}

func (p *PositionListIndex) NumClusters() int {
	return len(p.clusters)
}

func (p *PositionListIndex) NumRows() int {
	return p.numRows
}

// Size 落在簇中的行数
func (p *PositionListIndex) Size() int {
	return p.size
}

// AgreeingPairs 在该属性集上取值相同的行对数
func (p *PositionListIndex) AgreeingPairs() int64 {
	return p.agreeingPairs
}

// DisagreeingPairs 在该属性集上取值不同的行对数
func (p *PositionListIndex) DisagreeingPairs() int64 {
	return pairs(p.numRows) - p.agreeingPairs
}

// ProbingTable 行号 -> 簇号，单值行是SingletonProbe
func (p *PositionListIndex) ProbingTable() []model.Probe {
	probes := make([]model.Probe, p.numRows)
	for clusterId, cluster := range p.clusters {
		for _, rowId := range cluster {
			probes[rowId] = model.ClusterProbe(int32(clusterId))
		}
	}
	return probes
}

// Intersect 用另一列（或属性集）的探测表细化当前分区
func (p *PositionListIndex) Intersect(probes []model.Probe) *PositionListIndex {
	var clusters [][]int32
	group := make(map[int32]int) // 探测簇号 -> 当前簇内的分组下标
	var groups [][]int32
	for _, cluster := range p.clusters {
		clear(group)
		groups = groups[:0]
		for _, rowId := range cluster {
			clusterId, ok := probes[rowId].ClusterId()
			if !ok {
				continue
			}
			index, exist := group[clusterId]
			if !exist {
				index = len(groups)
				group[clusterId] = index
				groups = append(groups, nil)
			}
			groups[index] = append(groups[index], rowId)
		}
		for _, rowIds := range groups {
			if len(rowIds) > 1 {
				clusters = append(clusters, rowIds)
			}
		}
	}
	sort.Slice(clusters, func(i, j int) bool { return clusters[i][0] < clusters[j][0] })
	return newSorted(clusters, p.numRows)
}

func pairs(n int) int64 {
	return int64(n) * int64(n-1) >> 1
}

// Pairs C(n,2)
func Pairs(n int) int64 {
	if n < 2 {
		return 0
	}
	return pairs(n)
}

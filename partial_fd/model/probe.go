package model

import "fmt"

// Probe 探测表中的一项：某行要么落在某个簇里（带簇号），要么是单值行，不属于任何簇。
// 零值就是单值行。
type Probe struct {
	clusterId int32
	clustered bool
}

// SingletonProbe 单值行
var SingletonProbe = Probe{}

func ClusterProbe(clusterId int32) Probe {
	return Probe{clusterId: clusterId, clustered: true}
}

// ClusterId 返回簇号，单值行返回false
func (p Probe) ClusterId() (int32, bool) {
	return p.clusterId, p.clustered
}

func (p Probe) IsSingleton() bool {
	return !p.clustered
}

// SameCluster 两行落在同一个簇里才算值相等
func (p Probe) SameCluster(other Probe) bool {
	return p.clustered && other.clustered && p.clusterId == other.clusterId
}

func (p Probe) String() string {
	if !p.clustered {
		return "singleton"
	}
	return fmt.Sprintf("cluster#%d", p.clusterId)
}

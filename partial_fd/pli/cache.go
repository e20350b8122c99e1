package pli

import (
	"sort"
	"time"

	cmap "github.com/orcaman/concurrent-map"

	"rds-pfd/partial_fd/model"
)

// ColumnSource 缓存计算新分区时需要的单列信息
type ColumnSource interface {
	Schema() *model.Schema
	NumRows() int
	ColumnPli(columnIndex int) *PositionListIndex
	ProbingTable(columnIndex int) []model.Probe
}

// IntersectionObserver 每做完一次分区细化回调一次，用来统计耗时
type IntersectionObserver func(elapsed time.Duration)

// Cache 属性集 -> 剥离分区。多个搜索协程并发读写。
// 同一个属性集可能被并发重复计算，但只有第一个发布的结果会留下，之后所有调用方拿到的都是它。
type Cache struct {
	source   ColumnSource
	entries  cmap.ConcurrentMap
	observer IntersectionObserver
}

// NewCache 预先放入空属性集和所有单列的分区
func NewCache(source ColumnSource) *Cache {
	c := &Cache{source: source, entries: cmap.New()}
	schema := source.Schema()
	c.entries.Set(schema.EmptyVertical.Key(), ForWholeRelation(source.NumRows()))
	for _, column := range schema.Columns() {
		c.entries.Set(column.AsVertical().Key(), source.ColumnPli(column.Index()))
	}
	return c
}

func (c *Cache) SetObserver(observer IntersectionObserver) {
	c.observer = observer
}

// Get 只查缓存，不计算
func (c *Cache) Get(vertical model.Vertical) (*PositionListIndex, bool) {
	value, ok := c.entries.Get(vertical.Key())
	if !ok {
		return nil, false
	}
	return value.(*PositionListIndex), true
}

func (c *Cache) Size() int {
	return c.entries.Count()
}

// GetOrCreateFor 缓存里没有就用已缓存的父属性集（或单列）做细化得到
func (c *Cache) GetOrCreateFor(vertical model.Vertical) *PositionListIndex {
	if p, ok := c.Get(vertical); ok {
		return p
	}

	start := time.Now()
	base, rest := c.pickBase(vertical)
	p := base
	for _, columnIndex := range rest {
		p = p.Intersect(c.source.ProbingTable(columnIndex))
	}
	if c.observer != nil {
		c.observer(time.Since(start))
	}

	// 先到先得，后来者直接用已发布的
	if c.entries.SetIfAbsent(vertical.Key(), p) {
		return p
	}
	published, _ := c.Get(vertical)
	return published
}

// pickBase 选最小的已缓存父属性集作为起点，返回起点和还需要细化的列（按单列分区从小到大）
func (c *Cache) pickBase(vertical model.Vertical) (*PositionListIndex, []int) {
	columnIndexes := vertical.ColumnIndexes()
	var base *PositionListIndex
	baseMissing := -1
	for _, columnIndex := range columnIndexes {
		parent, ok := c.Get(vertical.Without(columnIndex))
		if !ok {
			continue
		}
		if base == nil || parent.Size() < base.Size() {
			base, baseMissing = parent, columnIndex
		}
	}
	if base != nil {
		return base, []int{baseMissing}
	}

	sort.Slice(columnIndexes, func(i, j int) bool {
		return c.source.ColumnPli(columnIndexes[i]).Size() < c.source.ColumnPli(columnIndexes[j]).Size()
	})
	return c.source.ColumnPli(columnIndexes[0]), columnIndexes[1:]
}

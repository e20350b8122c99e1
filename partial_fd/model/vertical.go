package model

import (
	"strings"

	"github.com/yourbasic/bit"
)

// Vertical 属性集，用位串表示包含哪些列。
// 位串一旦创建就不再修改，所有运算都返回新的Vertical，可以在协程之间随意共享。
type Vertical struct {
	schema *Schema
	bits   *bit.Set
}

// VerticalOf 用列号构造属性集，不传列号时就是空属性集（整个关系只有一个簇）
func (s *Schema) VerticalOf(columnIndexes ...int) Vertical {
	return Vertical{schema: s, bits: bit.New(columnIndexes...)}
}

func (v Vertical) Schema() *Schema {
	return v.schema
}

// Arity 属性集中列的个数
func (v Vertical) Arity() int {
	if v.bits == nil {
		return 0
	}
	return v.bits.Size()
}

func (v Vertical) IsEmpty() bool {
	return v.Arity() == 0
}

func (v Vertical) Contains(columnIndex int) bool {
	return v.bits != nil && v.bits.Contains(columnIndex)
}

func (v Vertical) Union(other Vertical) Vertical {
	return Vertical{schema: v.schema, bits: new(bit.Set).SetOr(v.set(), other.set())}
}

// Without 去掉某一列
func (v Vertical) Without(columnIndex int) Vertical {
	return Vertical{schema: v.schema, bits: new(bit.Set).Set(v.set()).Delete(columnIndex)}
}

// With 加上某一列
func (v Vertical) With(columnIndex int) Vertical {
	return Vertical{schema: v.schema, bits: new(bit.Set).Set(v.set()).Add(columnIndex)}
}

func (v Vertical) Minus(other Vertical) Vertical {
	return Vertical{schema: v.schema, bits: new(bit.Set).SetAndNot(v.set(), other.set())}
}

func (v Vertical) IsSubsetOf(other Vertical) bool {
	return v.set().Subset(other.set())
}

func (v Vertical) IsSupersetOf(other Vertical) bool {
	return other.set().Subset(v.set())
}

func (v Vertical) Equal(other Vertical) bool {
	return v.set().Equal(other.set())
}

// ColumnIndexes 升序返回列号
func (v Vertical) ColumnIndexes() []int {
	indexes := make([]int, 0, v.Arity())
	v.set().Visit(func(n int) (skip bool) {
		indexes = append(indexes, n)
		return false
	})
	return indexes
}

func (v Vertical) Columns() []*Column {
	indexes := v.ColumnIndexes()
	columns := make([]*Column, 0, len(indexes))
	for _, index := range indexes {
		columns = append(columns, v.schema.Column(index))
	}
	return columns
}

// Key 用作缓存key，相同的列集合得到相同的key
func (v Vertical) Key() string {
	return v.set().String()
}

func (v Vertical) String() string {
	names := make([]string, 0, v.Arity())
	for _, column := range v.Columns() {
		names = append(names, column.Name())
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func (v Vertical) set() *bit.Set {
	if v.bits == nil {
		return new(bit.Set)
	}
	return v.bits
}

package model

import (
	"fmt"
	"strings"
)

// Column 关系中的一列，index是列在schema里的位置
type Column struct {
	schema *Schema
	name   string
	index  int
}

func (c *Column) Name() string {
	return c.name
}

func (c *Column) Index() int {
	return c.index
}

func (c *Column) Schema() *Schema {
	return c.schema
}

// AsVertical 把单列转成只含这一列的属性集
func (c *Column) AsVertical() Vertical {
	return c.schema.VerticalOf(c.index)
}

func (c *Column) String() string {
	return c.name
}

// Schema 关系的列信息，创建之后不再修改，多个搜索协程共享只读
type Schema struct {
	name          string
	columns       []*Column
	columnIndexes map[string]int
	EmptyVertical Vertical
}

func NewSchema(name string, columnNames []string) (*Schema, error) {
	schema := &Schema{
		name:          name,
		columns:       make([]*Column, 0, len(columnNames)),
		columnIndexes: make(map[string]int, len(columnNames)),
	}
	for i, columnName := range columnNames {
		columnName = strings.TrimSpace(columnName)
		if _, ok := schema.columnIndexes[columnName]; ok {
			return nil, fmt.Errorf("duplicate column %q in relation %s", columnName, name)
		}
		schema.columns = append(schema.columns, &Column{schema: schema, name: columnName, index: i})
		schema.columnIndexes[columnName] = i
	}
	schema.EmptyVertical = schema.VerticalOf()
	return schema, nil
}

func (s *Schema) Name() string {
	return s.name
}

func (s *Schema) NumColumns() int {
	return len(s.columns)
}

func (s *Schema) Column(index int) *Column {
	return s.columns[index]
}

func (s *Schema) Columns() []*Column {
	return s.columns
}

// ColumnByName 按列名查列
func (s *Schema) ColumnByName(name string) (*Column, bool) {
	index, ok := s.columnIndexes[name]
	if !ok {
		return nil, false
	}
	return s.columns[index], true
}

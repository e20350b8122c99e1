package relation

import (
	"fmt"
	"strings"

	"rds-pfd/partial_fd/model"
	"rds-pfd/partial_fd/pli"
	"rds-pfd/rds_config"
	"rds-pfd/rock-share/base/logger"
)

// ColumnData 一列的只读数据：索引值、单列分区和探测表
type ColumnData struct {
	column       *model.Column
	valueIds     []int32
	pli          *pli.PositionListIndex
	probingTable []model.Probe
}

func (cd *ColumnData) Column() *model.Column {
	return cd.column
}

// ValueIds 每行的索引值，空值是NilIndex
func (cd *ColumnData) ValueIds() []int32 {
	return cd.valueIds
}

func (cd *ColumnData) Pli() *pli.PositionListIndex {
	return cd.pli
}

func (cd *ColumnData) ProbingTable() []model.Probe {
	return cd.probingTable
}

// RelationData 整张表的列存，加载之后只读，所有搜索协程共享
type RelationData struct {
	schema         *model.Schema
	columnData     []*ColumnData
	numRows        int
	nullEqualsNull bool
}

// NewRelationData rows按行给出，每行的列数要和列名一致。空字符串当作空值
func NewRelationData(name string, columnNames []string, rows [][]string, nullEqualsNull bool) (*RelationData, error) {
	schema, err := model.NewSchema(name, columnNames)
	if err != nil {
		return nil, err
	}
	for rowId, row := range rows {
		if len(row) != len(columnNames) {
			return nil, fmt.Errorf("relation %s row %d has %d values, expect %d", name, rowId, len(row), len(columnNames))
		}
	}

	r := &RelationData{
		schema:         schema,
		columnData:     make([]*ColumnData, 0, len(columnNames)),
		numRows:        len(rows),
		nullEqualsNull: nullEqualsNull,
	}
	for _, column := range schema.Columns() {
		valueIds := indexColumn(rows, column.Index())
		r.columnData = append(r.columnData, newColumnData(column, valueIds, nullEqualsNull))
		logger.Debugf("finish create pli relation:%v, column:%v", name, column.Name())
	}
	logger.Infof("finish load relation:%v, rows:%d, columns:%d", name, r.numRows, len(columnNames))
	return r, nil
}

// NewRelationDataFromValueIds 直接用索引值建表，测试和已经编码好的数据用
func NewRelationDataFromValueIds(name string, columnNames []string, columns [][]int32, nullEqualsNull bool) (*RelationData, error) {
	schema, err := model.NewSchema(name, columnNames)
	if err != nil {
		return nil, err
	}
	if len(columns) != len(columnNames) {
		return nil, fmt.Errorf("relation %s has %d columns, expect %d", name, len(columns), len(columnNames))
	}
	numRows := 0
	if len(columns) > 0 {
		numRows = len(columns[0])
	}
	r := &RelationData{schema: schema, numRows: numRows, nullEqualsNull: nullEqualsNull}
	for _, column := range schema.Columns() {
		valueIds := columns[column.Index()]
		if len(valueIds) != numRows {
			return nil, fmt.Errorf("relation %s column %s has %d rows, expect %d", name, column.Name(), len(valueIds), numRows)
		}
		r.columnData = append(r.columnData, newColumnData(column, valueIds, nullEqualsNull))
	}
	return r, nil
}

func newColumnData(column *model.Column, valueIds []int32, nullEqualsNull bool) *ColumnData {
	columnPli := pli.ForValues(valueIds, nullEqualsNull)
	return &ColumnData{
		column:       column,
		valueIds:     valueIds,
		pli:          columnPli,
		probingTable: columnPli.ProbingTable(),
	}
}

// indexColumn 按首次出现的顺序给值编号，空值用NilIndex
func indexColumn(rows [][]string, columnIndex int) []int32 {
	value2Index := map[string]int32{}
	valueIds := make([]int32, len(rows))
	for rowId, row := range rows {
		value := strings.TrimSpace(row[columnIndex])
		if value == "" {
			valueIds[rowId] = rds_config.NilIndex
			continue
		}
		index, ok := value2Index[value]
		if !ok {
			index = int32(len(value2Index))
			value2Index[value] = index
		}
		valueIds[rowId] = index
	}
	return valueIds
}

func (r *RelationData) Schema() *model.Schema {
	return r.schema
}

func (r *RelationData) NumRows() int {
	return r.numRows
}

func (r *RelationData) NumColumns() int {
	return len(r.columnData)
}

// NumTuplePairs C(行数,2)，大表会超过int32
func (r *RelationData) NumTuplePairs() int64 {
	return pli.Pairs(r.numRows)
}

func (r *RelationData) NullEqualsNull() bool {
	return r.nullEqualsNull
}

func (r *RelationData) ColumnData(columnIndex int) *ColumnData {
	return r.columnData[columnIndex]
}

func (r *RelationData) ColumnPli(columnIndex int) *pli.PositionListIndex {
	return r.columnData[columnIndex].pli
}

func (r *RelationData) ProbingTable(columnIndex int) []model.Probe {
	return r.columnData[columnIndex].probingTable
}

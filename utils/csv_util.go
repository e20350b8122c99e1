package utils

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/bovinae/common/util"
	mapset "github.com/deckarep/golang-set"
	"golang.org/x/exp/slices"

	"rds-pfd/partial_fd/model"
	"rds-pfd/partial_fd/relation"
	"rds-pfd/rock-share/base/logger"
)

// LoadRelationCsv 读csv建列存，第一行是列名，表名取文件名
func LoadRelationCsv(ctx context.Context, p string, nullEqualsNull bool) (*relation.RelationData, error) {
	if _, err := os.Stat(p); err != nil {
		logger.Errorf("open csv %v failed, err:%v", p, err)
		return nil, fmt.Errorf("%w: %v", ErrOpenCsv, err)
	}
	data, err := util.NewCsvClient().ReadCsvFile(ctx, p)
	if err != nil {
		logger.Errorf("read csv %v failed, err:%v", p, err)
		return nil, fmt.Errorf("%w: %v", ErrReadCsv, err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyHeader.With(p)
	}

	header := make([]string, len(data[0]))
	for i, name := range data[0] {
		header[i] = strings.TrimSpace(name)
	}
	if slices.Contains(header, "") {
		return nil, ErrEmptyHeader.With(p)
	}
	if duplicate, ok := firstDuplicate(header); ok {
		return nil, ErrDuplicateName.With(duplicate)
	}
	rows := data[1:]
	if len(rows) == 0 {
		return nil, ErrEmptyRelation.With(p)
	}

	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	r, err := relation.NewRelationData(name, header, rows, nullEqualsNull)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadCsv, err)
	}
	return r, nil
}

func firstDuplicate(names []string) (string, bool) {
	seen := mapset.NewThreadUnsafeSet()
	for _, name := range names {
		if !seen.Add(name) {
			return name, true
		}
	}
	return "", false
}

// ColumnsByName 按列名找列，不存在时返回ErrColumnNotExist
func ColumnsByName(r *relation.RelationData, names []string) ([]*model.Column, error) {
	columns := make([]*model.Column, 0, len(names))
	for _, name := range names {
		column, ok := r.Schema().ColumnByName(name)
		if !ok {
			return nil, ErrColumnNotExist.With(name)
		}
		columns = append(columns, column)
	}
	return columns, nil
}

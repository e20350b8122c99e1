package format

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/LinkinStars/golang-util/gu"
	"gopkg.in/yaml.v3"

	"rds-pfd/partial_fd/core"
	"rds-pfd/partial_fd/search"
	"rds-pfd/rds_config"
	"rds-pfd/utils"
)

type DependencyRecord struct {
	Lhs   []string `json:"lhs" yaml:"lhs"`
	Rhs   string   `json:"rhs" yaml:"rhs"`
	Error float64  `json:"error" yaml:"error"`
	Score float64  `json:"score" yaml:"score"`
}

// ResultFile 一次发现任务的结果
type ResultFile struct {
	TaskId        int64                  `json:"task_id" yaml:"task_id"`
	Relation      string                 `json:"relation" yaml:"relation"`
	NumRows       int                    `json:"num_rows" yaml:"num_rows"`
	Configuration core.Configuration     `json:"configuration" yaml:"configuration"`
	SpentTime     int64                  `json:"spent_time" yaml:"spent_time"` // ms
	Dependencies  []DependencyRecord     `json:"dependencies" yaml:"dependencies"`
	Profiling     core.ProfilingSnapshot `json:"profiling" yaml:"profiling"`
}

func NewDependencyRecords(dependencies []search.Dependency) []DependencyRecord {
	records := make([]DependencyRecord, 0, len(dependencies))
	for _, dependency := range dependencies {
		lhs := make([]string, 0, dependency.Lhs.Arity())
		for _, column := range dependency.Lhs.Columns() {
			lhs = append(lhs, column.Name())
		}
		records = append(records, DependencyRecord{
			Lhs:   lhs,
			Rhs:   dependency.Rhs.Name(),
			Error: dependency.Error,
			Score: dependency.Score,
		})
	}
	return records
}

// WriteResultYaml 写到 dir/<taskId>.yml，返回文件路径
func WriteResultYaml(dir string, result *ResultFile) (string, error) {
	if err := gu.CreateDirIfNotExist(dir); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrWriteResult, err)
	}
	content, err := yaml.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrWriteResult, err)
	}
	p := path.Join(dir, strconv.FormatInt(result.TaskId, 10)+rds_config.ResultExtension)
	if err = os.WriteFile(p, content, 0644); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrWriteResult, err)
	}
	return p, nil
}

func ReadResultYaml(p string) (*ResultFile, error) {
	content, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	result := &ResultFile{}
	if err = yaml.Unmarshal(content, result); err != nil {
		return nil, err
	}
	return result, nil
}

package main

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"rds-pfd/partial_fd/core"
	"rds-pfd/partial_fd/format"
	"rds-pfd/partial_fd/search"
	"rds-pfd/rds_config"
	"rds-pfd/rock-share/base/config"
	"rds-pfd/rock-share/base/logger"
	"rds-pfd/utils"
)

type DiscoverResult struct {
	Path         string
	File         *format.ResultFile
	Dependencies []search.Dependency
}

// DiscoverPfd 加载csv，对每个rhs搜索最小的近似函数依赖，结果写到结果目录
func DiscoverPfd(ctx context.Context, request *PFDRequest, resultDir string) (*DiscoverResult, error) {
	startTime := time.Now().UnixMilli()
	taskId := startTime
	logger.Infof("taskId:%v, pfd discovery start, path:%v", taskId, request.Path)

	all := config.All
	if all == nil {
		all = config.Default()
	}
	if resultDir == "" {
		resultDir = all.Server.ResultDir
	}
	configuration := request.Configuration(all.Pfd)
	if err := configuration.Validate(); err != nil {
		return nil, err
	}

	data, err := utils.LoadRelationCsv(ctx, request.Path, configuration.NullEqualsNull)
	if err != nil {
		return nil, err
	}
	targets, err := utils.ColumnsByName(data, request.Rhs)
	if err != nil {
		return nil, err
	}

	profilingContext := core.NewProfilingContext(configuration, data)
	registration, err := profilingContext.ProfilingData.RegisterMetrics(otel.Meter(rds_config.ProjectName))
	if err != nil {
		logger.Warnf("taskId:%v, register metrics failed, err:%v", taskId, err)
	} else {
		defer func() { _ = registration.Unregister() }()
	}

	collector := search.NewResultCollector()
	strategies := core.CreateStrategies(profilingContext, core.FdG1StrategyFactory, targets...)
	if err = search.NewSearcher(profilingContext, collector).Discover(ctx, strategies); err != nil {
		logger.Errorf("taskId:%v, pfd discovery failed, err:%v", taskId, err)
		return nil, err
	}

	dependencies := collector.Dependencies()
	result := &format.ResultFile{
		TaskId:        taskId,
		Relation:      data.Schema().Name(),
		NumRows:       data.NumRows(),
		Configuration: configuration,
		SpentTime:     time.Now().UnixMilli() - startTime,
		Dependencies:  format.NewDependencyRecords(dependencies),
		Profiling:     profilingContext.ProfilingData.Snapshot(),
	}
	p, err := format.WriteResultYaml(resultDir, result)
	if err != nil {
		return nil, err
	}
	logger.Infof("taskId:%v, pfd discovery finished, spent:%dms, dependencies:%v, result:%v", taskId, result.SpentTime, len(dependencies), p)
	return &DiscoverResult{Path: p, File: result, Dependencies: dependencies}, nil
}

package search

import (
	"runtime"

	"rds-pfd/rds_config"
)

// GenTokenChan 限制同时运行的rhs协程数（类似于信号量）。tokenNum<=0 时按cpu核数
func GenTokenChan(tokenNum int) chan struct{} {
	if tokenNum <= 0 {
		// 留1个核给其他服务
		tokenNum = runtime.NumCPU() - 1
		if tokenNum > rds_config.MAXCpuNum {
			tokenNum = rds_config.MAXCpuNum
		}
	}
	if tokenNum <= 0 {
		tokenNum = 1
	}
	ch := make(chan struct{}, tokenNum)
	for i := 0; i < tokenNum; i++ {
		ch <- struct{}{}
	}
	return ch
}

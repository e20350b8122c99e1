package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"rds-pfd/rock-share/base/config"
	"rds-pfd/rock-share/base/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the http server",
	RunE: func(cmd *cobra.Command, args []string) error {
		address := ":" + config.All.Server.HttpPort
		logger.Infof("pfd server listening on %v", address)
		return newRouter().Run(address)
	},
}

func newRouter() *gin.Engine {
	r := gin.Default()
	r.POST("/pfd", start)
	return r
}

func start(c *gin.Context) {
	var requestJson PFDRequest
	if err := c.ShouldBindJSON(&requestJson); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		logger.Warnf("请求异常:%v", err)
		return
	}
	result, e := DiscoverPfd(c.Request.Context(), &requestJson, "")
	if e != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   e.Error(),
		})
	} else {
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"result_path":  result.Path,
			"fd_size":      len(result.Dependencies),
			"spent_time":   result.File.SpentTime,
			"dependencies": result.File.Dependencies,
		})
	}
}

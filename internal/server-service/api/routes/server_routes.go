package routes

import (
	"VCS_Server_Manager/internal/server-service/api/handler"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetUpServerRoutes(r *gin.Engine, handler handler.ServerHandler) {
	serverRoutes := r.Group("/servers")
	serverRoutes.GET("", handler.GetServers())
	serverRoutes.POST("", handler.CreateServer())
	serverRoutes.POST("/batch", handler.SaveServers())
	serverRoutes.POST("/import", handler.ImportServersFromExcelFile())
	serverRoutes.GET("/export", handler.ExportServersToExcelFile())
	serverRoutes.POST("/reports", handler.ReportServersStatus())
	serverRoutes.GET("/ip/:ip", handler.GetServerByIpAddress())
	serverRoutes.POST("/ip/:ip/ping", handler.PingServer())
	serverRoutes.GET("/:id", handler.GetServerById())
	serverRoutes.PUT("/:id", handler.UpdateServer())
	serverRoutes.DELETE("/:id", handler.DeleteServer())
}

// SetUpHealthRoutes answers 503 while check fails, so the process can be taken out of rotation.
func SetUpHealthRoutes(r *gin.Engine, check func(ctx context.Context) error) {
	r.GET("/healthz", func(c *gin.Context) {
		if err := check(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

package handler

import (
	"log"
	"time"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

var serverStart = time.Now()

type StatsHandler struct {
	importsRepo *repository.ImportsRepo
}

func NewStatsHandler(importsRepo *repository.ImportsRepo) *StatsHandler {
	return &StatsHandler{importsRepo: importsRepo}
}

// GetServiceStats reports system and service health for the admin view.
func (h *StatsHandler) GetServiceStats(c *gin.Context) {
	var stats model.ServiceStats

	stats.System.CPUUsagePercent = utils.GetCPUUsage()
	stats.System.MemoryUsagePercent, stats.System.MemoryUsedMB = utils.GetMemoryUsage()

	mongoMetrics := utils.GetMongoMetrics()
	stats.Mongo.ActiveConnections = mongoMetrics.ActiveConnections
	stats.Mongo.TotalOperations = mongoMetrics.TotalOperations
	stats.Mongo.LastCheckTime = mongoMetrics.LastCheckTime

	staged, err := h.importsRepo.CountByStatus(model.ImportStaged)
	if err != nil {
		log.Printf("Error counting staged batches: %v", err)
		utils.InternalError(c, "Failed to count import batches")
		return
	}
	stats.Imports.Staged = staged

	committed, err := h.importsRepo.CountByStatus(model.ImportCommitted)
	if err != nil {
		log.Printf("Error counting committed batches: %v", err)
		utils.InternalError(c, "Failed to count import batches")
		return
	}
	stats.Imports.Committed = committed

	stats.Uptime = time.Since(serverStart).Round(time.Second).String()

	utils.Success(c, stats)
}

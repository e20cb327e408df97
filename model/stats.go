package model

import "time"

type SystemStats struct {
	CPUUsagePercent    float64 `json:"cpu_usage_percent"`
	MemoryUsagePercent float64 `json:"memory_usage_percent"`
	MemoryUsedMB       uint64  `json:"memory_used_mb"`
}

type MongoStats struct {
	ActiveConnections int64     `json:"active_connections"`
	TotalOperations   int64     `json:"total_operations"`
	LastCheckTime     time.Time `json:"last_check_time"`
}

type ImportStats struct {
	Staged    int64 `json:"staged"`
	Committed int64 `json:"committed"`
}

// ServiceStats is the payload of the /api/stats endpoint.
type ServiceStats struct {
	System  SystemStats `json:"system"`
	Mongo   MongoStats  `json:"mongo"`
	Imports ImportStats `json:"imports"`
	Uptime  string      `json:"uptime"`
}

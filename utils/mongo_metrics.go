package utils

import (
	"sync/atomic"
	"time"
)

type MongoMetrics struct {
	ActiveConnections int64
	TotalOperations   int64
	LastCheckTime     time.Time
}

var metrics MongoMetrics

func IncrementActiveConnections() {
	atomic.AddInt64(&metrics.ActiveConnections, 1)
}

func DecrementActiveConnections() {
	atomic.AddInt64(&metrics.ActiveConnections, -1)
}

func IncrementMongoOperations() {
	atomic.AddInt64(&metrics.TotalOperations, 1)
}

func GetMongoMetrics() MongoMetrics {
	return MongoMetrics{
		ActiveConnections: atomic.LoadInt64(&metrics.ActiveConnections),
		TotalOperations:   atomic.LoadInt64(&metrics.TotalOperations),
		LastCheckTime:     time.Now(),
	}
}

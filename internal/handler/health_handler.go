package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"social-network/pkg/db"
	"social-network/pkg/redis"
	"social-network/pkg/response"
)

// Health reports database and cache connectivity. The database is required,
// so a failed ping flips the status; the cache is best-effort and only
// degrades the report.
func Health(c *gin.Context) {
	status := "ok"
	if err := db.HealthCheck(); err != nil {
		status = "db-down"
	}

	cache := "ok"
	if err := redis.HealthCheck(); err != nil {
		cache = "down"
	}

	response.Success(c, gin.H{
		"status": status,
		"cache":  cache,
		"time":   time.Now().Format(time.RFC3339),
	})
}

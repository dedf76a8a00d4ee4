package handlers

import (
	"net/http"
	"strconv"

	"cronwatch/db"
	"cronwatch/services"

	"github.com/gin-gonic/gin"
)

// GetStatsOverview summarizes persisted check history. Requires the
// optional database; without it there is nothing to aggregate.
func GetStatsOverview(c *gin.Context) {
	conn := db.GetDB()
	if conn == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Check history is not configured"})
		return
	}

	var stats struct {
		TotalChecks  int     `json:"total_checks"`
		TotalResults int     `json:"total_results"`
		OkCount      int     `json:"ok_count"`
		WarningCount int     `json:"warning_count"`
		ErrorCount   int     `json:"error_count"`
		RunningCount int     `json:"running_count"`
		HealthRate   float64 `json:"health_rate"`
	}

	_ = conn.QueryRow("SELECT COUNT(DISTINCT check_id) FROM job_checks").Scan(&stats.TotalChecks)
	_ = conn.QueryRow("SELECT COUNT(*) FROM job_checks").Scan(&stats.TotalResults)
	_ = conn.QueryRow("SELECT COUNT(*) FROM job_checks WHERE status = 'ok'").Scan(&stats.OkCount)
	_ = conn.QueryRow("SELECT COUNT(*) FROM job_checks WHERE status = 'warning'").Scan(&stats.WarningCount)
	_ = conn.QueryRow("SELECT COUNT(*) FROM job_checks WHERE status = 'error'").Scan(&stats.ErrorCount)
	_ = conn.QueryRow("SELECT COUNT(*) FROM job_checks WHERE status = 'running'").Scan(&stats.RunningCount)

	if stats.TotalResults > 0 {
		stats.HealthRate = (float64(stats.OkCount) / float64(stats.TotalResults)) * 100
	}

	c.JSON(http.StatusOK, stats)
}

// GetCheckHistory pages through persisted check records.
func GetCheckHistory(c *gin.Context) {
	limit := 100
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}

	records, err := services.RecentChecks(limit)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"checks": records})
}

// GetJobStats summarizes history for one job by name.
func GetJobStats(c *gin.Context) {
	conn := db.GetDB()
	if conn == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Check history is not configured"})
		return
	}

	jobName := c.Param("name")

	var stats struct {
		JobName    string `json:"job_name"`
		CheckCount int    `json:"check_count"`
		OkCount    int    `json:"ok_count"`
		ErrorCount int    `json:"error_count"`
		LastStatus string `json:"last_status"`
	}
	stats.JobName = jobName

	_ = conn.QueryRow("SELECT COUNT(*) FROM job_checks WHERE job_name = $1", jobName).Scan(&stats.CheckCount)
	if stats.CheckCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No history for job"})
		return
	}

	_ = conn.QueryRow("SELECT COUNT(*) FROM job_checks WHERE job_name = $1 AND status = 'ok'", jobName).Scan(&stats.OkCount)
	_ = conn.QueryRow("SELECT COUNT(*) FROM job_checks WHERE job_name = $1 AND status = 'error'", jobName).Scan(&stats.ErrorCount)
	_ = conn.QueryRow("SELECT status FROM job_checks WHERE job_name = $1 ORDER BY created_at DESC LIMIT 1", jobName).Scan(&stats.LastStatus)

	c.JSON(http.StatusOK, stats)
}

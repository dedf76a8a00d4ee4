package services

import (
	"fmt"

	"cronwatch/db"
	"cronwatch/models"

	"github.com/google/uuid"
)

// RecordCheck persists one monitoring pass, one row per job. The
// database is optional; without one the cache in Monitor is all there
// is, and that is fine — history is never authoritative.
func RecordCheck(channelID string, results []models.JobResult) {
	conn := db.GetDB()
	if conn == nil {
		return
	}

	checkID := uuid.New().String()
	for _, r := range results {
		_, err := conn.Exec(`
			INSERT INTO job_checks (id, check_id, channel_id, job_name, status, message, running)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, uuid.New().String(), checkID, channelID, r.Name, r.Status, r.Message, r.Running)
		if err != nil {
			fmt.Printf("Error saving check record for %s: %v\n", r.Name, err)
		}
	}
}

// RecentChecks returns the newest persisted results, newest first.
func RecentChecks(limit int) ([]models.CheckRecord, error) {
	conn := db.GetDB()
	if conn == nil {
		return nil, fmt.Errorf("check history is not configured")
	}

	rows, err := conn.Query(`
		SELECT id, check_id, channel_id, job_name, status, message, running, created_at
		FROM job_checks
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.CheckRecord
	for rows.Next() {
		var r models.CheckRecord
		if err := rows.Scan(&r.ID, &r.CheckID, &r.ChannelID, &r.JobName, &r.Status, &r.Message, &r.Running, &r.CreatedAt); err != nil {
			continue
		}
		records = append(records, r)
	}

	if records == nil {
		records = []models.CheckRecord{}
	}
	return records, nil
}

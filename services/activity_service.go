package services

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/nyakundi-felix/pixelstore/database"
	"github.com/nyakundi-felix/pixelstore/models"
)

// LogActivity appends an audit entry for a user. It is best-effort: a
// failed audit write is logged for operators but never propagated, so
// it cannot fail the mutation that produced it.
func LogActivity(userID uuid.UUID, activityType string, details map[string]interface{}, ip, userAgent string) {
	payload := ""
	if details != nil {
		encoded, err := json.Marshal(details)
		if err != nil {
			log.Printf("🔥 Failed to encode activity details for %s: %v", userID, err)
		} else {
			payload = string(encoded)
		}
	}

	entry := models.ActivityLog{
		UserID:    userID,
		Type:      activityType,
		Details:   payload,
		IP:        ip,
		UserAgent: userAgent,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		log.Printf("🔥 Failed to record %q activity for %s: %v", activityType, userID, err)
	}
}

func GetActivityLog(userID uuid.UUID, limit, offset int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var entries []models.ActivityLog
	err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	return entries, err
}

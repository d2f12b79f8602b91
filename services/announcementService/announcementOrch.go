package announcementService

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"terminusaOnline/models"
)

// Create publishes a system-wide announcement authored by the given user.
func Create(db *gorm.DB, authorID uint, title, content string, expiresAt *time.Time) (*models.Announcement, error) {
	if title == "" {
		return nil, errors.New("announcement title is required")
	}
	announcement := &models.Announcement{
		Title:     title,
		Content:   content,
		AuthorID:  &authorID,
		IsActive:  true,
		ExpiresAt: expiresAt,
	}
	if result := db.Create(announcement); result.Error != nil {
		return nil, result.Error
	}
	return announcement, nil
}

// Latest returns the newest active announcements, newest first.
func Latest(db *gorm.DB, limit int) ([]models.Announcement, error) {
	if limit <= 0 {
		limit = 5
	}
	var announcements []models.Announcement
	result := db.
		Where("is_active = ?", true).
		Where("expires_at IS NULL OR expires_at > ?", time.Now().UTC()).
		Order("created_at DESC").
		Limit(limit).
		Find(&announcements)
	if result.Error != nil {
		return nil, result.Error
	}
	return announcements, nil
}

// Author resolves the announcement's author with an explicit lookup. Returns
// nil without error for system announcements that have no author.
func Author(db *gorm.DB, announcement *models.Announcement) (*models.User, error) {
	if announcement.AuthorID == nil {
		return nil, nil
	}
	var user models.User
	if result := db.First(&user, *announcement.AuthorID); result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// ExpireStale deactivates announcements whose expiry has passed and reports
// how many were touched.
func ExpireStale(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Model(&models.Announcement{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, now).
		UpdateColumn("is_active", false)
	return result.RowsAffected, result.Error
}

package models

import "time"

// Announcement references its author by id only. Resolve the author with
// announcementService.Author; there is no loaded back-reference in either
// direction.
type Announcement struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255"`
	Content   string
	AuthorID  *uint
	IsActive  bool   `gorm:"default:true"`
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

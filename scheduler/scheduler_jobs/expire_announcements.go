package scheduler_jobs

import (
	"log"
	"time"

	"gorm.io/gorm"

	"terminusaOnline/services/announcementService"
)

// ExpireAnnouncements deactivates announcements past their expiry.
func ExpireAnnouncements(db *gorm.DB) error {
	expired, err := announcementService.ExpireStale(db, time.Now().UTC())
	if err != nil {
		return err
	}
	if expired > 0 {
		log.Printf("Expired %d announcements", expired)
	}
	return nil
}

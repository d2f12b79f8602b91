package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"terminusaOnline/scheduler/scheduler_jobs"
)

func SetupCron(db *gorm.DB) *cron.Cron {
	cronService := cron.New(cron.WithSeconds())

	_, err := cronService.AddFunc("0 0 0 * * *", func() {
		// Midnight UTC every day
		err := scheduler_jobs.ResetDailyQuests(db)
		if err != nil {
			fmt.Println(err)
		}
	})

	_, err = cronService.AddFunc("0 0 * * * *", func() {
		// Every hour
		err := scheduler_jobs.RegenerateGates(db)
		if err != nil {
			fmt.Println(err)
		}
	})

	_, err = cronService.AddFunc("0 */5 * * * *", func() {
		// Every 5 minutes
		err := scheduler_jobs.ConcludeGuildWars(db)
		if err != nil {
			fmt.Println(err)
		}
	})

	_, err = cronService.AddFunc("0 */10 * * * *", func() {
		// Every 10 minutes
		err := scheduler_jobs.ExpireAnnouncements(db)
		if err != nil {
			fmt.Println(err)
		}
	})

	if err != nil {
		fmt.Println(err)
	}

	cronService.Start()
	return cronService
}

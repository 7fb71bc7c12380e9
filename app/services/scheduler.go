package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StartSweepScheduler wires the nightly absence sweep: at midnight the
// just-ended day is swept for every staff account. The returned cron is
// already running; stop it on shutdown.
func StartSweepScheduler(store Store) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("0 0 * * *", func() {
		date := time.Now().AddDate(0, 0, -1).Format(DateLayout)
		summary := SweepAllStaff(store, date)
		log.Printf("nightly sweep %s: %d staff, %d rows, %d errors",
			summary.Date, summary.StaffSwept, summary.RowsInserted, len(summary.Errors))
	})
	if err != nil {
		log.Printf("sweep scheduler: %v", err)
		return c
	}
	c.Start()
	return c
}

// RunStartupSweep covers downtime: if the server was off at midnight the
// nightly job never fired, so sweep yesterday and today once on boot.
func RunStartupSweep(store Store) {
	now := time.Now()
	for _, date := range []string{
		now.AddDate(0, 0, -1).Format(DateLayout),
		now.Format(DateLayout),
	} {
		summary := SweepAllStaff(store, date)
		log.Printf("startup sweep %s: %d staff, %d rows, %d errors",
			summary.Date, summary.StaffSwept, summary.RowsInserted, len(summary.Errors))
	}
}

package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/psymatch/therapy-app/db"
	"github.com/psymatch/therapy-app/models"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes the scheduler for invite code housekeeping
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Hourly sweep of expired, never-used invite codes
	_, err := c.AddFunc("0 * * * *", sweepExpiredInviteCodes)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for invite code cleanup")
}

// sweepExpiredInviteCodes deletes unused codes whose expiry has passed.
// Used codes are kept for the audit trail.
func sweepExpiredInviteCodes() {
	result := db.DB.Where("is_used = ? AND expires_at IS NOT NULL AND expires_at < ?", false, time.Now()).
		Delete(&models.InviteCode{})
	if result.Error != nil {
		log.Printf("Error sweeping expired invite codes: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Removed %d expired invite codes", result.RowsAffected)
	}
}

package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/kamogelodev/student_fund/database"
	"github.com/kamogelodev/student_fund/models"
	"github.com/kamogelodev/student_fund/notifications"
)

// CloseEndedCampaigns marks active campaigns past their end date as
// completed and tells the owner.
func CloseEndedCampaigns() {
	log.Println("Running job: CloseEndedCampaigns...")

	var endedCampaigns []models.Campaign
	err := database.DB.
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", "active", time.Now()).
		Find(&endedCampaigns).Error
	if err != nil {
		log.Printf("Error checking for ended campaigns: %v", err)
		return
	}

	if len(endedCampaigns) == 0 {
		log.Println("No ended campaigns found.")
		return
	}

	notifier := notifications.NewNotifier(database.DB)
	for _, campaign := range endedCampaigns {
		if err := database.DB.Model(&models.Campaign{}).Where("id = ?", campaign.ID).
			Update("status", "completed").Error; err != nil {
			log.Printf("Failed to complete campaign %s: %v", campaign.ID, err)
			continue
		}

		message := fmt.Sprintf("Your campaign %q has reached its end date and is now closed.", campaign.Title)
		if err := notifier.NotifyUser(campaign.StudentID, "Campaign completed", message, models.NotificationTypeSuccess); err != nil {
			log.Printf("Failed to notify student %s about completed campaign %s: %v", campaign.StudentID, campaign.ID, err)
		}
	}

	log.Printf("Marked %d campaign(s) as completed.", len(endedCampaigns))
}

package handlers

import (
	"github.com/kamogelodev/student_fund/database"
	"github.com/kamogelodev/student_fund/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ListMyNotifications(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var notificationList []models.Notification
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at desc").Find(&notificationList).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var unread int64
	database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).Count(&unread)

	return c.JSON(fiber.Map{"notifications": notificationList, "unread": unread})
}

func MarkNotificationRead(c *fiber.Ctx) error {
	userID := currentUserID(c)

	notificationID := c.Params("notificationId")
	if _, err := uuid.Parse(notificationID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid notification ID format"})
	}

	result := database.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update notification"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found"})
	}

	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

func MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update notifications"})
	}

	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}

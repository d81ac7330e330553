package routes

import (
	"github.com/kamogelodev/student_fund/handlers"
	"github.com/kamogelodev/student_fund/middleware"
	"github.com/gofiber/fiber/v2"
)

func NotificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	notifications := api.Group("/notifications", middleware.Protected())
	notifications.Get("", handlers.ListMyNotifications)
	notifications.Put("/read-all", handlers.MarkAllNotificationsRead)
	notifications.Put("/:notificationId/read", handlers.MarkNotificationRead)
}

package handlers

import (
	"github.com/kamogelodev/student_fund/database"
	"github.com/kamogelodev/student_fund/models"
	"github.com/gofiber/fiber/v2"
)

func ListUniversities(c *fiber.Ctx) error {
	var universities []models.University
	if err := database.DB.Order("name asc").Find(&universities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(universities)
}

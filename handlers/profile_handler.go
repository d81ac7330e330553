package handlers

import (
	"github.com/kamogelodev/student_fund/database"
	"github.com/kamogelodev/student_fund/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func currentUserID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	return userID
}

func GetProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var student models.Student
	err := database.DB.Preload("University").Where("user_id = ?", userID).First(&student).Error

	response := fiber.Map{"user": user}
	if err == nil {
		response["student"] = student
	}
	return c.JSON(response)
}

type StudentProfileRequest struct {
	UniversityID  string `json:"university_id" validate:"required,uuid4"`
	StudentNumber string `json:"student_number" validate:"required"`
}

// SubmitStudentProfile records the student's university details and opens a
// verification request in the same transaction, so a request can never
// exist without the profile it reviews.
func SubmitStudentProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req StudentProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	universityID, err := uuid.Parse(req.UniversityID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid university ID format"})
	}

	var university models.University
	if err := database.DB.Where("id = ?", universityID).First(&university).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "University not found"})
	}

	var student models.Student
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(models.Student{UserID: userID}).
			Assign(models.Student{
				UniversityID:       &universityID,
				StudentNumber:      req.StudentNumber,
				VerificationStatus: "pending",
			}).
			FirstOrCreate(&student).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("role", "student").Error; err != nil {
			return err
		}

		request := models.VerificationRequest{
			StudentID: userID,
			Status:    "pending",
		}
		return tx.Create(&request).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit student profile"})
	}

	return c.Status(fiber.StatusCreated).JSON(student)
}

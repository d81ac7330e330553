package database

import (
	"fmt"
	"log"

	config "github.com/kamogelodev/student_fund/configs"
	"github.com/kamogelodev/student_fund/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.University{},
		&models.Student{},
		&models.Campaign{},
		&models.VerificationRequest{},
		&models.Donation{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		FullName: config.Config("ADMIN_FULL_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

func SeedUniversities() {
	var count int64
	err := DB.Model(&models.University{}).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for universities: %v", err)
		return
	}

	if count > 0 {
		log.Println("Universities already seeded.")
		return
	}

	universities := []models.University{
		{Name: "University of Cape Town", BankName: "Standard Bank", AccountName: "UCT Student Fees", AccountNumber: "070880063", BranchCode: "025009"},
		{Name: "University of the Witwatersrand", BankName: "First National Bank", AccountName: "Wits Student Fees", AccountNumber: "62605571038", BranchCode: "255005"},
		{Name: "University of Pretoria", BankName: "ABSA", AccountName: "UP Student Accounts", AccountNumber: "2140000054", BranchCode: "632005"},
		{Name: "University of Johannesburg", BankName: "Nedbank", AccountName: "UJ Tuition Fees", AccountNumber: "1454096257", BranchCode: "198765"},
		{Name: "Stellenbosch University", BankName: "Standard Bank", AccountName: "SU Student Accounts", AccountNumber: "073006955", BranchCode: "050610"},
	}

	if err := DB.Create(&universities).Error; err != nil {
		log.Fatalf("🔥 Failed to seed universities: %v", err)
		return
	}

	log.Println("✅ Universities seeded successfully")
}

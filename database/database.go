package database

import (
	"fmt"

	"api/config"
	"api/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection and migrates the relational
// models. Only durable structured data lives here (comments and daily
// challenges); submissions themselves live in the content store.
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=Asia/Seoul",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	err = DB.AutoMigrate(
		&models.Comment{},
		&models.DailyProblem{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}
}

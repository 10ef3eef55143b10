package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hellointerview_backend/internals/configs"
	catalogModel "hellointerview_backend/internals/features/catalog/questions/model"
	sessionModel "hellointerview_backend/internals/features/practice/sessions/model"
	submissionModel "hellointerview_backend/internals/features/practice/submissions/model"
	userModel "hellointerview_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=hellointerview&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // plays nice with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

// Migrate keeps the schema in sync with the models. History tables keep the
// ids of the rows they archive, so their keys are not autoincrement.
func Migrate() {
	err := DB.AutoMigrate(
		&catalogModel.QuestionMainModel{},
		&catalogModel.QuestionModel{},
		&sessionModel.PracticeMainModel{},
		&sessionModel.PracticeMainHistoryModel{},
		&submissionModel.PracticeModel{},
		&submissionModel.PracticeHistoryModel{},
		&submissionModel.PracticeFeedbackHistoryModel{},
		&userModel.UserModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] auto-migrate failed: %v", err)
	}
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUpQueries fills the pool shortly after boot so the first request does
// not pay the connection cost.
func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("[WARN] warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

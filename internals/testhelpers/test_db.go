package testhelpers

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	catalogModel "hellointerview_backend/internals/features/catalog/questions/model"
	sessionModel "hellointerview_backend/internals/features/practice/sessions/model"
	submissionModel "hellointerview_backend/internals/features/practice/submissions/model"
	userModel "hellointerview_backend/internals/features/users/user/model"
)

// SetupTestDB creates an isolated in-memory SQLite database migrated with the
// full schema. Each test gets its own database, keyed by the test name.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
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
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

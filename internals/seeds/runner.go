package seeds

import (
	"gorm.io/gorm"

	catalog "hellointerview_backend/internals/seeds/catalog"
)

func RunAllSeeds(db *gorm.DB) {
	catalog.SeedQuestionMainsFromJSON(db, "internals/seeds/catalog/data_question_mains.json")
}

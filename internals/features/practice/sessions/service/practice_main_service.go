package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hellointerview_backend/internals/features/practice/sessions/dto"
	"hellointerview_backend/internals/features/practice/sessions/model"
	practiceModel "hellointerview_backend/internals/features/practice/submissions/model"
)

// GetActivePracticeMain looks up the active session for (user, question main,
// status). It never falls back to the history tables; only completion does.
func GetActivePracticeMain(db *gorm.DB, userID, questionMainID int64, status string) (*model.PracticeMainModel, error) {
	if strings.TrimSpace(status) == "" {
		status = model.StatusPracticing
	}

	var pm model.PracticeMainModel
	err := db.
		Where("user_id = ? AND question_main_id = ? AND status = ?", userID, questionMainID, status).
		First(&pm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "No active practice session found")
		}
		log.Println("[ERROR] fetch active practice_main:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch practice session")
	}
	return &pm, nil
}

// GetQuestionIDsWithPractices returns the distinct question ids that have at
// least one submitted practice under the session.
func GetQuestionIDsWithPractices(db *gorm.DB, practiceMainID int64) ([]int64, error) {
	ids := []int64{}
	err := db.Model(&practiceModel.PracticeModel{}).
		Where("practice_main_id = ?", practiceMainID).
		Distinct().
		Pluck("question_id", &ids).Error
	if err != nil {
		log.Println("[ERROR] fetch practice question ids:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch practice progress")
	}
	return ids, nil
}

func GetActiveWithProgress(db *gorm.DB, userID, questionMainID int64, status string) (*dto.PracticeMainResponse, error) {
	pm, err := GetActivePracticeMain(db, userID, questionMainID, status)
	if err != nil {
		return nil, err
	}
	ids, err := GetQuestionIDsWithPractices(db, pm.PracticeMainID)
	if err != nil {
		return nil, err
	}
	return dto.NewPracticeMainResponse(pm, ids), nil
}

// CreatePracticeMain starts a new session with status "practicing". Multiple
// concurrent practicing sessions per (user, question main) are allowed, as in
// the upstream schema (no unique index); callers query before creating.
func CreatePracticeMain(db *gorm.DB, userID, questionMainID int64) (*model.PracticeMainModel, error) {
	pm := model.PracticeMainModel{
		UserID:         userID,
		QuestionMainID: questionMainID,
		Status:         model.StatusPracticing,
	}
	if err := db.Create(&pm).Error; err != nil {
		log.Println("[ERROR] create practice_main:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create practice session")
	}
	return &pm, nil
}

// UpdatePracticeMainStatus sets the session status. "completed" routes to the
// archival path; any other status clears completed_at, set or not. Only the
// completion path may write completed_at.
func UpdatePracticeMainStatus(db *gorm.DB, practiceMainID int64, status string) (*model.PracticeMainModel, error) {
	if status == model.StatusCompleted {
		return CompletePracticeSession(db, practiceMainID)
	}

	var pm model.PracticeMainModel
	if err := db.First(&pm, "practice_main_id = ?", practiceMainID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound,
				fmt.Sprintf("PracticeMain with id %d does not exist", practiceMainID))
		}
		log.Println("[ERROR] fetch practice_main:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch practice session")
	}

	err := db.Model(&pm).Updates(map[string]interface{}{
		"status":       status,
		"completed_at": nil,
	}).Error
	if err != nil {
		log.Println("[ERROR] update practice_main status:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update practice session")
	}

	pm.Status = status
	pm.CompletedAt = nil
	return &pm, nil
}

// CompletePracticeSession archives an active practicing session into the
// history tables and deletes the active rows, all in one transaction. When no
// active row exists it replays from history, so completing twice returns the
// same archived representation both times.
func CompletePracticeSession(db *gorm.DB, practiceMainID int64) (*model.PracticeMainModel, error) {
	var pm model.PracticeMainModel
	err := db.First(&pm, "practice_main_id = ?", practiceMainID).Error
	switch {
	case err == nil:
		return archiveAndDeleteActive(db, &pm)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return loadCompletedFromHistory(db, practiceMainID)
	default:
		log.Println("[ERROR] fetch practice_main:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch practice session")
	}
}

func archiveAndDeleteActive(db *gorm.DB, pm *model.PracticeMainModel) (*model.PracticeMainModel, error) {
	if pm.Status != model.StatusPracticing {
		if pm.Status == model.StatusCompleted {
			return pm, nil
		}
		return nil, fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Cannot complete practice session with status: %s", pm.Status))
	}

	completedAt := time.Now()

	err := db.Transaction(func(tx *gorm.DB) error {
		hist := model.PracticeMainHistoryModel{
			PracticeMainID: pm.PracticeMainID,
			UserID:         pm.UserID,
			QuestionMainID: pm.QuestionMainID,
			Status:         model.StatusCompleted,
			StartedAt:      pm.StartedAt,
			CompletedAt:    &completedAt,
		}
		if err := tx.Create(&hist).Error; err != nil {
			return err
		}

		var practices []practiceModel.PracticeModel
		if err := tx.Where("practice_main_id = ?", pm.PracticeMainID).Find(&practices).Error; err != nil {
			return err
		}

		if len(practices) > 0 {
			histRows := make([]practiceModel.PracticeHistoryModel, 0, len(practices))
			for _, p := range practices {
				histRows = append(histRows, practiceModel.PracticeHistoryModel{
					PracticeID:     p.PracticeID,
					PracticeMainID: hist.PracticeMainID,
					QuestionID:     p.QuestionID,
					SubmittedAt:    p.SubmittedAt,
				})
			}
			if err := tx.Create(&histRows).Error; err != nil {
				return err
			}
			if err := tx.Where("practice_main_id = ?", pm.PracticeMainID).
				Delete(&practiceModel.PracticeModel{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.PracticeMainModel{}, "practice_main_id = ?", pm.PracticeMainID).Error
	})
	if err != nil {
		log.Println("[ERROR] archive practice_main:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to archive practice session")
	}

	// Transient completed representation; the active row is gone and the
	// caller does not need a re-fetch.
	return &model.PracticeMainModel{
		PracticeMainID: pm.PracticeMainID,
		UserID:         pm.UserID,
		QuestionMainID: pm.QuestionMainID,
		Status:         model.StatusCompleted,
		StartedAt:      pm.StartedAt,
		CompletedAt:    &completedAt,
	}, nil
}

func loadCompletedFromHistory(db *gorm.DB, practiceMainID int64) (*model.PracticeMainModel, error) {
	var hist model.PracticeMainHistoryModel
	if err := db.First(&hist, "practice_main_id = ?", practiceMainID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound,
				fmt.Sprintf("PracticeMain with id %d does not exist", practiceMainID))
		}
		log.Println("[ERROR] fetch practice_main_history:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch practice session history")
	}

	return &model.PracticeMainModel{
		PracticeMainID: hist.PracticeMainID,
		UserID:         hist.UserID,
		QuestionMainID: hist.QuestionMainID,
		Status:         hist.Status,
		StartedAt:      hist.StartedAt,
		CompletedAt:    hist.CompletedAt,
	}, nil
}

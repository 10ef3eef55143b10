package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hellointerview_backend/internals/features/catalog/questions/model"
	"hellointerview_backend/internals/testhelpers"
)

func TestGetQuestionMainByIDOrdersQuestions(t *testing.T) {
	db := testhelpers.SetupTestDB(t)

	qm := model.QuestionMainModel{
		Name:    "Design a Rate Limiter",
		WriteUp: "Token bucket per client, shared counters in a fast store.",
	}
	require.NoError(t, db.Create(&qm).Error)

	// Insert out of order on purpose.
	questions := []model.QuestionModel{
		{QuestionMainID: qm.QuestionMainID, Order: 3, Type: model.QuestionTypeEntities, Name: "Entities", Description: "d", WhiteboardSection: 2},
		{QuestionMainID: qm.QuestionMainID, Order: 1, Type: model.QuestionTypeFunctionalReq, Name: "Functional", Description: "d", WhiteboardSection: 1},
		{QuestionMainID: qm.QuestionMainID, Order: 2, Type: model.QuestionTypeNonFunctionalReq, Name: "Non-functional", Description: "d", WhiteboardSection: 1},
	}
	require.NoError(t, db.Create(&questions).Error)

	got, err := GetQuestionMainByID(db, qm.QuestionMainID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got.Questions[0].Order, got.Questions[1].Order, got.Questions[2].Order})
	assert.Equal(t, model.QuestionTypeFunctionalReq, got.Questions[0].Type)
}

func TestGetQuestionMainByIDNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)

	_, err := GetQuestionMainByID(db, 404)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestGetQuestionMainByIDEmptyQuestions(t *testing.T) {
	db := testhelpers.SetupTestDB(t)

	qm := model.QuestionMainModel{Name: "Empty case", WriteUp: "w"}
	require.NoError(t, db.Create(&qm).Error)

	got, err := GetQuestionMainByID(db, qm.QuestionMainID)
	require.NoError(t, err)
	assert.NotNil(t, got.Questions)
	assert.Empty(t, got.Questions)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/studyquiz/back/internal/models"
	"github.com/studyquiz/back/internal/services"
	"github.com/studyquiz/back/internal/utils"
)

type AttemptHandler struct {
	studyService services.StudyService
}

func NewAttemptHandler(studyService services.StudyService) *AttemptHandler {
	return &AttemptHandler{
		studyService: studyService,
	}
}

func (h *AttemptHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// バリデーション
	if req.QuizID <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "quizId is required")
		return
	}
	if req.TotalQuestions <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "totalQuestions must be a positive integer")
		return
	}
	if req.Score < 0 || req.Score > req.TotalQuestions {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "score must be between 0 and totalQuestions")
		return
	}

	attempt, err := h.studyService.RecordAttempt(r.Context(), req)
	if err != nil {
		if err.Error() == "quiz not found" {
			utils.WriteErrorResponse(w, http.StatusNotFound, "quiz not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, models.AttemptResponse{
		Success: true,
		Attempt: attempt,
	})
}

func (h *AttemptHandler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	var attempts []*models.Attempt
	var err error

	// quizId指定があればそのクイズの履歴、なければ全体の履歴を返す
	if r.URL.Query().Get("quizId") != "" {
		var quizID int64
		quizID, err = parseIDParam(r, "quizId")
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		attempts, err = h.studyService.ListAttemptsByQuiz(r.Context(), quizID)
	} else {
		limit, offset := parsePagination(r)
		attempts, err = h.studyService.ListAttempts(r.Context(), limit, offset)
	}

	if err != nil {
		if err.Error() == "quiz not found" {
			utils.WriteErrorResponse(w, http.StatusNotFound, "quiz not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if attempts == nil {
		attempts = []*models.Attempt{}
	}

	utils.WriteJSONResponse(w, http.StatusOK, models.AttemptListResponse{
		Success:  true,
		Attempts: attempts,
		Count:    len(attempts),
	})
}

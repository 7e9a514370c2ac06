package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/studyquiz/back/internal/models"
	"github.com/studyquiz/back/internal/services"
	"github.com/studyquiz/back/internal/utils"
)

// 1回の生成で要求できる問題数の範囲
const (
	minQuestionCount = 1
	maxQuestionCount = 50
)

type QuizHandler struct {
	quizService services.QuizService
}

func NewQuizHandler(quizService services.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

func (h *QuizHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// バリデーション
	if strings.TrimSpace(req.Content) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}
	if !models.QuestionType(req.QuestionType).IsValid() {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "questionType must be one of multiple_choice, identification, true_false, mixed")
		return
	}
	if req.QuestionCount < minQuestionCount || req.QuestionCount > maxQuestionCount {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "questionCount must be between 1 and 50")
		return
	}

	quiz, err := h.quizService.GenerateQuiz(r.Context(), req)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := models.GenerateQuizResponse{
		Success:       true,
		QuizID:        quiz.ID,
		Title:         quiz.Title,
		QuestionCount: quiz.QuestionCount,
	}

	utils.WriteJSONResponse(w, http.StatusOK, response)
}

func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	quiz, err := h.quizService.GetQuiz(r.Context(), id)
	if err != nil {
		if err.Error() == "quiz not found" {
			utils.WriteErrorResponse(w, http.StatusNotFound, "quiz not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, models.QuizDetailResponse{
		Success: true,
		Quiz:    quiz,
	})
}

func (h *QuizHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	quizzes, err := h.quizService.ListQuizzes(r.Context(), limit, offset)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if quizzes == nil {
		quizzes = []*models.Quiz{}
	}

	utils.WriteJSONResponse(w, http.StatusOK, models.QuizListResponse{
		Success: true,
		Quizzes: quizzes,
		Count:   len(quizzes),
	})
}

func (h *QuizHandler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.quizService.DeleteQuiz(r.Context(), id); err != nil {
		if err.Error() == "quiz not found" {
			utils.WriteErrorResponse(w, http.StatusNotFound, "quiz not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

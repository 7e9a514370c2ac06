package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/studyquiz/back/internal/models"
	"github.com/studyquiz/back/internal/services"
	"github.com/studyquiz/back/internal/utils"
)

type BookmarkHandler struct {
	studyService services.StudyService
}

func NewBookmarkHandler(studyService services.StudyService) *BookmarkHandler {
	return &BookmarkHandler{
		studyService: studyService,
	}
}

func (h *BookmarkHandler) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.QuestionID <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "questionId is required")
		return
	}

	bookmark, err := h.studyService.AddBookmark(r.Context(), req.QuestionID)
	if err != nil {
		switch err.Error() {
		case "question not found":
			utils.WriteErrorResponse(w, http.StatusNotFound, "question not found")
		case "question is already bookmarked":
			utils.WriteErrorResponse(w, http.StatusBadRequest, "question is already bookmarked")
		default:
			utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, models.BookmarkResponse{
		Success:  true,
		Bookmark: bookmark,
	})
}

func (h *BookmarkHandler) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	questionID, err := parseIDParam(r, "questionId")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.studyService.RemoveBookmark(r.Context(), questionID); err != nil {
		if err.Error() == "bookmark not found" {
			utils.WriteErrorResponse(w, http.StatusNotFound, "bookmark not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *BookmarkHandler) ListBookmarkedQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.studyService.GetBookmarkedQuestions(r.Context())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if questions == nil {
		questions = []*models.Question{}
	}

	utils.WriteJSONResponse(w, http.StatusOK, models.BookmarkedQuestionsResponse{
		Success:   true,
		Questions: questions,
		Count:     len(questions),
	})
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/studyquiz/back/internal/models"
	"github.com/studyquiz/back/internal/services"
	"github.com/studyquiz/back/internal/utils"
)

type NoteHandler struct {
	studyService services.StudyService
}

func NewNoteHandler(studyService services.StudyService) *NoteHandler {
	return &NoteHandler{
		studyService: studyService,
	}
}

func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	note, err := h.studyService.CreateNote(r.Context(), req)
	if err != nil {
		if err.Error() == "quiz not found" {
			utils.WriteErrorResponse(w, http.StatusNotFound, "quiz not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, models.NoteResponse{
		Success: true,
		Note:    note,
	})
}

func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	note, err := h.studyService.GetNote(r.Context(), id)
	if err != nil {
		if err.Error() == "note not found" {
			utils.WriteErrorResponse(w, http.StatusNotFound, "note not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, models.NoteResponse{
		Success: true,
		Note:    note,
	})
}

func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	var quizID *int64
	if r.URL.Query().Get("quizId") != "" {
		id, err := parseIDParam(r, "quizId")
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		quizID = &id
	}

	notes, err := h.studyService.ListNotes(r.Context(), quizID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if notes == nil {
		notes = []*models.Note{}
	}

	utils.WriteJSONResponse(w, http.StatusOK, models.NoteListResponse{
		Success: true,
		Notes:   notes,
		Count:   len(notes),
	})
}

func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ID <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	note, err := h.studyService.UpdateNote(r.Context(), req)
	if err != nil {
		if err.Error() == "note not found" {
			utils.WriteErrorResponse(w, http.StatusNotFound, "note not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, models.NoteResponse{
		Success: true,
		Note:    note,
	})
}

func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.studyService.DeleteNote(r.Context(), id); err != nil {
		if err.Error() == "note not found" {
			utils.WriteErrorResponse(w, http.StatusNotFound, "note not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

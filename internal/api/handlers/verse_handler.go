package handlers

import (
	"net/http"

	"github.com/studyquiz/back/internal/models"
	"github.com/studyquiz/back/internal/services"
	"github.com/studyquiz/back/internal/utils"
)

type VerseHandler struct {
	verseService services.VerseService
}

func NewVerseHandler(verseService services.VerseService) *VerseHandler {
	return &VerseHandler{
		verseService: verseService,
	}
}

func (h *VerseHandler) GetVerse(w http.ResponseWriter, r *http.Request) {
	verse, err := h.verseService.GetVerseOfTheDay(r.Context())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, models.VerseResponse{
		Success: true,
		Verse:   verse,
	})
}

package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/studyquiz/back/internal/models"
	"github.com/studyquiz/back/internal/services"
	"github.com/studyquiz/back/internal/utils"
)

// アップロードサイズの上限（50MB）
const maxUploadBytes = 50 << 20

// 抽出テキストがこれより短い教材はクイズ生成に使えない
const minContentLength = 50

type UploadHandler struct {
	extractorService services.ExtractorService
}

func NewUploadHandler(extractorService services.ExtractorService) *UploadHandler {
	return &UploadHandler{
		extractorService: extractorService,
	}
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "failed to parse upload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	fmt.Printf("📤 ファイルアップロード: %s (%d bytes)\n", header.Filename, len(data))

	result, err := h.extractorService.Extract(r.Context(), data, header.Filename)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if utf8.RuneCountInString(strings.TrimSpace(result.Text)) < minContentLength {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "not enough text content in the uploaded file to generate questions")
		return
	}

	response := models.UploadResponse{
		Success:  true,
		Content:  result.Text,
		Metadata: &result.Metadata,
	}

	utils.WriteJSONResponse(w, http.StatusOK, response)
}

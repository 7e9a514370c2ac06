package handlers

import (
	"net/http"

	"github.com/studyquiz/back/internal/config"
	"github.com/studyquiz/back/internal/utils"
)

// ConfigHandler はフロントエンドに表示設定（テーマ・文言）を配る
type ConfigHandler struct {
	uiConfig *config.UIConfig
}

func NewConfigHandler(uiConfig *config.UIConfig) *ConfigHandler {
	return &ConfigHandler{
		uiConfig: uiConfig,
	}
}

func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"config":  h.uiConfig,
	})
}

package controllers

import (
	"context"
	"io"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MediaController struct {
	Log          *zap.Logger
	MediaUsecase contracts.MediaUsecase
}

func NewMediaController(logger *zap.Logger, mediaUsecase contracts.MediaUsecase) *MediaController {
	return &MediaController{
		Log:          logger,
		MediaUsecase: mediaUsecase,
	}
}

// Get streams a media object to the client instead of wrapping it in the JSON
// envelope.
func (ctrl *MediaController) Get(w http.ResponseWriter, r *http.Request) {
	objectName := chi.URLParam(r, "*")
	if objectName == "" {
		objectName = chi.URLParam(r, "objectName")
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	body, contentType, err := ctrl.MediaUsecase.FetchMedia(ctx, objectName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer body.Close()

	w.Header().Set(constvars.HeaderContentType, contentType)
	w.WriteHeader(constvars.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		ctrl.Log.Error("error streaming media object", zap.Error(err))
	}
}

package controllers

import (
	"context"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/exceptions"
	"medicenter-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ContactController struct {
	Log            *zap.Logger
	ContactUsecase contracts.ContactUsecase
}

func NewContactController(logger *zap.Logger, contactUsecase contracts.ContactUsecase) *ContactController {
	return &ContactController{
		Log:            logger,
		ContactUsecase: contactUsecase,
	}
}

func (ctrl *ContactController) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ContactMessage)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ContactUsecase.SubmitContactMessage(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ContactMessageSuccess, nil)
}

func (ctrl *ContactController) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	request := new(requests.NewsletterSignup)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ContactUsecase.SubscribeNewsletter(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.NewsletterSignupSuccess, nil)
}

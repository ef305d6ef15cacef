package controllers

import (
	"context"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type StaffController struct {
	Log          *zap.Logger
	StaffUsecase contracts.StaffUsecase
}

func NewStaffController(logger *zap.Logger, staffUsecase contracts.StaffUsecase) *StaffController {
	return &StaffController{
		Log:          logger,
		StaffUsecase: staffUsecase,
	}
}

func (ctrl *StaffController) FindAll(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.StaffUsecase.FindAll(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStaffSuccess, response)
}

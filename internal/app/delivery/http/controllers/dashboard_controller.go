package controllers

import (
	"context"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/exceptions"
	"medicenter-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.DashboardUsecase.BuildDashboard(ctx, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccess, response)
}

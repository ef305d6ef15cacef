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

// OpsController exposes the operational endpoints behind the API-key guard.
type OpsController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
}

func NewOpsController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase) *OpsController {
	return &OpsController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *OpsController) RefreshDashboardCaches(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	if err := ctrl.DashboardUsecase.RefreshCaches(ctx); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CacheRefreshSuccess, nil)
}

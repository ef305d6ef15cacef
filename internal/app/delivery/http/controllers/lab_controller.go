package controllers

import (
	"context"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/exceptions"
	"medicenter-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxLabResultFormMemory = 16 << 20

type LabController struct {
	Log        *zap.Logger
	LabUsecase contracts.LabUsecase
}

func NewLabController(logger *zap.Logger, labUsecase contracts.LabUsecase) *LabController {
	return &LabController{
		Log:        logger,
		LabUsecase: labUsecase,
	}
}

func (ctrl *LabController) FindTestRequests(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	queryParams := utils.BuildQueryParamsRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.LabUsecase.FindTestRequests(ctx, session, queryParams)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTestRequestsSuccess, response)
}

func (ctrl *LabController) CreateTestRequest(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateTestRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.LabUsecase.CreateTestRequest(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTestRequestSuccess, response)
}

// CreateLabResult accepts a multipart form so the lab can attach the result
// document.
func (ctrl *LabController) CreateLabResult(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := r.ParseMultipartForm(maxLabResultFormMemory); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	testRequestID, _ := strconv.ParseInt(r.FormValue("test_request"), 10, 64)
	request := &requests.CreateLabResult{
		TestRequestID: testRequestID,
		Result:        r.FormValue("result"),
		Remarks:       r.FormValue("remarks"),
	}

	file, header, err := r.FormFile("attachment")
	if err == nil {
		defer file.Close()
		request.Attachment = file
		request.AttachmentHeader = header
	} else if err != http.ErrMissingFile {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.LabUsecase.CreateLabResult(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateLabResultSuccess, response)
}

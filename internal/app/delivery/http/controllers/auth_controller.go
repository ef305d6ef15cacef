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

const maxRegisterFormMemory = 10 << 20

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

// Session is the silent restore endpoint: it resolves to the authenticated or
// anonymous state and never errors on a missing token.
func (ctrl *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID := utils.GetSessionIDFromContext(r.Context())

	response, err := ctrl.AuthUsecase.Restore(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.SessionAnonymous
	if response.Authenticated {
		message = constvars.SessionRestoredSuccess
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LoginUser)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	request, err := bindRegisterForm(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if request.ProfilePix != nil {
		defer request.ProfilePix.Close()
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.AuthUsecase.Register(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccess, response)
}

// Logout is idempotent; calling it without a live session still answers with
// the home redirect.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID := utils.GetSessionIDFromContext(r.Context())

	response, err := ctrl.AuthUsecase.Logout(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, response)
}

func bindRegisterForm(r *http.Request) (*requests.RegisterUser, error) {
	if err := r.ParseMultipartForm(maxRegisterFormMemory); err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	request := &requests.RegisterUser{
		Username:  r.FormValue("username"),
		Email:     r.FormValue("email"),
		Fullname:  r.FormValue("fullname"),
		Phone:     r.FormValue("phone"),
		Gender:    r.FormValue("gender"),
		Role:      r.FormValue("role"),
		Password1: r.FormValue("password1"),
		Password2: r.FormValue("password2"),
	}

	file, header, err := r.FormFile("profile_pix")
	if err == nil {
		request.ProfilePix = file
		request.ProfilePixHeader = header
	} else if err != http.ErrMissingFile {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	return request, nil
}

package controllers

import (
	"context"
	"fmt"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/exceptions"
	"medicenter-service/internal/pkg/utils"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBlogFormMemory = 32 << 20

type BlogController struct {
	Log         *zap.Logger
	BlogUsecase contracts.BlogUsecase
}

func NewBlogController(logger *zap.Logger, blogUsecase contracts.BlogUsecase) *BlogController {
	return &BlogController{
		Log:         logger,
		BlogUsecase: blogUsecase,
	}
}

func (ctrl *BlogController) FindAll(w http.ResponseWriter, r *http.Request) {
	queryParams := utils.BuildQueryParamsRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BlogUsecase.FindAll(ctx, queryParams)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBlogPostsSuccess, response)
}

func (ctrl *BlogController) FindLatest(w http.ResponseWriter, r *http.Request) {
	queryParams := utils.BuildQueryParamsRequest(r)
	count := queryParams.Count
	if count <= 0 {
		count = 3
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BlogUsecase.FindLatest(ctx, count)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBlogPostsSuccess, response)
}

func (ctrl *BlogController) FindBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BlogUsecase.FindBySlug(ctx, slug)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBlogPostSuccess, response)
}

func (ctrl *BlogController) GetStats(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BlogUsecase.GetStats(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBlogStatsSuccess, response)
}

func (ctrl *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	title, body, images, headers, err := bindBlogForm(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request := &requests.CreateBlogPost{Title: title, Body: body, Images: images, ImageHeaders: headers}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.BlogUsecase.CreateBlogPost(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBlogPostSuccess, response)
}

func (ctrl *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	slug := chi.URLParam(r, "slug")
	title, body, images, headers, err := bindBlogForm(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request := &requests.UpdateBlogPost{Title: title, Body: body, Images: images, ImageHeaders: headers}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.BlogUsecase.UpdateBlogPost(ctx, session, slug, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBlogPostSuccess, response)
}

func (ctrl *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.BlogUsecase.DeleteBlogPost(ctx, session, slug); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteBlogPostSuccess, nil)
}

func bindBlogForm(r *http.Request) (string, string, []multipart.File, []*multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxBlogFormMemory); err != nil {
		return "", "", nil, nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	title := r.FormValue("title")
	body := r.FormValue("body")

	var images []multipart.File
	var headers []*multipart.FileHeader
	for i := 1; i <= constvars.BlogMaxImages; i++ {
		file, header, err := r.FormFile(fmt.Sprintf("image%d", i))
		if err == http.ErrMissingFile {
			continue
		}
		if err != nil {
			return "", "", nil, nil, exceptions.ErrCannotParseMultipartForm(err)
		}
		images = append(images, file)
		headers = append(headers, header)
	}

	return title, body, images, headers, nil
}

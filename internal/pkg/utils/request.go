package utils

import (
	"medicenter-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
)

func BuildQueryParamsRequest(r *http.Request) *requests.QueryParams {
	queryParams := &requests.QueryParams{
		Status: r.URL.Query().Get("status"),
	}

	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		queryParams.Page = page
	}
	if pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && pageSize > 0 {
		queryParams.PageSize = pageSize
	}
	if count, err := strconv.Atoi(r.URL.Query().Get("count")); err == nil && count > 0 {
		queryParams.Count = count
	}

	return queryParams
}

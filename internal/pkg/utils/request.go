package utils

import (
	"errors"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get(constvars.URLQueryParamPage)
	pageSizeStr := r.URL.Query().Get(constvars.URLQueryParamPageSize)

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = constvars.DefaultPageSize
	}
	if pageSize > constvars.MaxPageSize {
		pageSize = constvars.MaxPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func ToModelPagination(p *requests.Pagination) models.Pagination {
	return models.Pagination{Page: p.Page, PageSize: p.PageSize}
}

// ParseIDParam reads a positive integer id from the chi route parameter name.
func ParseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, exceptions.ErrURLParamIDValidation(errors.New("parameter is missing from url path"), name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, name)
	}
	if id <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(errors.New("id must be positive"), name)
	}
	return id, nil
}

// ParseQueryInt64 returns 0 when the query parameter is absent.
func ParseQueryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		if err == nil {
			err = errors.New("value must not be negative")
		}
		return 0, exceptions.ErrQueryParamValidation(err, name)
	}
	return value, nil
}

func ParseQueryInt(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		if err == nil {
			err = errors.New("value must be positive")
		}
		return 0, exceptions.ErrQueryParamValidation(err, name)
	}
	return value, nil
}

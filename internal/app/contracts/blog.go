package contracts

import (
	"context"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/dto/responses"
	"medicenter-service/internal/pkg/hospitaldto"
)

type BlogUsecase interface {
	FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]hospitaldto.BlogPost, error)
	FindLatest(ctx context.Context, count int) ([]hospitaldto.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*responses.BlogPostDetail, error)
	GetStats(ctx context.Context, session *models.Session) (*hospitaldto.BlogStats, error)
	CreateBlogPost(ctx context.Context, session *models.Session, request *requests.CreateBlogPost) ([]hospitaldto.BlogPost, error)
	UpdateBlogPost(ctx context.Context, session *models.Session, slug string, request *requests.UpdateBlogPost) (*hospitaldto.BlogPost, error)
	DeleteBlogPost(ctx context.Context, session *models.Session, slug string) error
}

type BlogHospitalClient interface {
	FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]hospitaldto.BlogPost, error)
	FindLatest(ctx context.Context, count int) ([]hospitaldto.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*hospitaldto.BlogPost, error)
	GetStats(ctx context.Context, accessToken string) (*hospitaldto.BlogStats, error)
	CreateBlogPost(ctx context.Context, accessToken string, request *requests.CreateBlogPost) (*hospitaldto.BlogPost, error)
	UpdateBlogPost(ctx context.Context, accessToken, slug string, request *requests.UpdateBlogPost) (*hospitaldto.BlogPost, error)
	DeleteBlogPost(ctx context.Context, accessToken, slug string) error
}

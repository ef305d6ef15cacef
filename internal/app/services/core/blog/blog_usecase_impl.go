package blog

import (
	"context"
	"medicenter-service/internal/app/config"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/dto/responses"
	"medicenter-service/internal/pkg/exceptions"
	"medicenter-service/internal/pkg/hospitaldto"
	"medicenter-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	blogUsecaseInstance contracts.BlogUsecase
	onceBlogUsecase     sync.Once
)

type blogUsecase struct {
	BlogHospitalClient contracts.BlogHospitalClient
	Log                *zap.Logger
	InternalConfig     *config.InternalConfig
}

func NewBlogUsecase(
	blogHospitalClient contracts.BlogHospitalClient,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.BlogUsecase {
	onceBlogUsecase.Do(func() {
		instance := &blogUsecase{
			BlogHospitalClient: blogHospitalClient,
			Log:                logger,
			InternalConfig:     internalConfig,
		}
		blogUsecaseInstance = instance
	})
	return blogUsecaseInstance
}

func (uc *blogUsecase) FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]hospitaldto.BlogPost, error) {
	posts, err := uc.BlogHospitalClient.FindAll(ctx, queryParams)
	if err != nil {
		return nil, err
	}
	uc.normalizeMedia(posts)
	return posts, nil
}

func (uc *blogUsecase) FindLatest(ctx context.Context, count int) ([]hospitaldto.BlogPost, error) {
	posts, err := uc.BlogHospitalClient.FindLatest(ctx, count)
	if err != nil {
		return nil, err
	}
	uc.normalizeMedia(posts)
	return posts, nil
}

// FindBySlug loads the post and extracts its table of contents from the body
// headings.
func (uc *blogUsecase) FindBySlug(ctx context.Context, slug string) (*responses.BlogPostDetail, error) {
	post, err := uc.BlogHospitalClient.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	single := []hospitaldto.BlogPost{*post}
	uc.normalizeMedia(single)

	return &responses.BlogPostDetail{
		Post: single[0],
		TOC:  utils.ExtractTOC(single[0].Body),
	}, nil
}

func (uc *blogUsecase) GetStats(ctx context.Context, session *models.Session) (*hospitaldto.BlogStats, error) {
	return uc.BlogHospitalClient.GetStats(ctx, session.AccessToken)
}

func (uc *blogUsecase) CreateBlogPost(ctx context.Context, session *models.Session, request *requests.CreateBlogPost) ([]hospitaldto.BlogPost, error) {
	if err := uc.validatePost(request.Title, request.Body, len(request.Images)); err != nil {
		return nil, err
	}

	if _, err := uc.BlogHospitalClient.CreateBlogPost(ctx, session.AccessToken, request); err != nil {
		return nil, err
	}

	return uc.FindAll(ctx, nil)
}

func (uc *blogUsecase) UpdateBlogPost(ctx context.Context, session *models.Session, slug string, request *requests.UpdateBlogPost) (*hospitaldto.BlogPost, error) {
	if err := uc.validatePost(request.Title, request.Body, len(request.Images)); err != nil {
		return nil, err
	}

	post, err := uc.BlogHospitalClient.UpdateBlogPost(ctx, session.AccessToken, slug, request)
	if err != nil {
		return nil, err
	}

	single := []hospitaldto.BlogPost{*post}
	uc.normalizeMedia(single)
	return &single[0], nil
}

func (uc *blogUsecase) DeleteBlogPost(ctx context.Context, session *models.Session, slug string) error {
	return uc.BlogHospitalClient.DeleteBlogPost(ctx, session.AccessToken, slug)
}

func (uc *blogUsecase) validatePost(title, body string, imageCount int) error {
	if title == "" || body == "" {
		return exceptions.ErrMissingRequiredFields()
	}
	if imageCount > constvars.BlogMaxImages {
		return exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientTooManyBlogImages, constvars.ErrDevValidationFailed)
	}
	return nil
}

func (uc *blogUsecase) normalizeMedia(posts []hospitaldto.BlogPost) {
	mediaHost := uc.InternalConfig.Hospital.MediaHost
	for i := range posts {
		posts[i].Image1 = utils.NormalizeMediaURL(mediaHost, posts[i].Image1)
		posts[i].Image2 = utils.NormalizeMediaURL(mediaHost, posts[i].Image2)
		posts[i].Image3 = utils.NormalizeMediaURL(mediaHost, posts[i].Image3)
	}
}

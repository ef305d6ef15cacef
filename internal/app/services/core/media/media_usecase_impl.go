package media

import (
	"bytes"
	"context"
	"io"
	"medicenter-service/internal/app/config"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/exceptions"
	"medicenter-service/internal/pkg/utils"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	mediaUsecaseInstance contracts.MediaUsecase
	onceMediaUsecase     sync.Once
)

type mediaUsecase struct {
	MediaStorage   contracts.MediaStorage
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewMediaUsecase(
	mediaStorage contracts.MediaStorage,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.MediaUsecase {
	onceMediaUsecase.Do(func() {
		instance := &mediaUsecase{
			MediaStorage:   mediaStorage,
			Log:            logger,
			InternalConfig: internalConfig,
		}
		mediaUsecaseInstance = instance
	})
	return mediaUsecaseInstance
}

// FetchMedia serves a media object from the MinIO cache, pulling it from the
// upstream media host on a miss and caching the copy for the next request.
func (uc *mediaUsecase) FetchMedia(ctx context.Context, mediaPath string) (io.ReadCloser, string, error) {
	objectName := strings.TrimPrefix(strings.TrimPrefix(mediaPath, constvars.MediaPathPrefix), "/")
	if objectName == "" {
		return nil, "", exceptions.ErrMinioGetObject(nil, mediaPath)
	}

	body, contentType, err := uc.MediaStorage.GetObject(ctx, objectName)
	if err == nil {
		return body, contentType, nil
	}

	return uc.fetchFromUpstream(ctx, objectName)
}

func (uc *mediaUsecase) fetchFromUpstream(ctx context.Context, objectName string) (io.ReadCloser, string, error) {
	mediaURL := utils.NormalizeMediaURL(uc.InternalConfig.Hospital.MediaHost, objectName)
	uc.Log.Info("media cache miss, fetching upstream",
		zap.String(constvars.LoggingUpstreamUrlKey, mediaURL),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, "", exceptions.ErrCreateHTTPRequest(err)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", exceptions.ErrMinioGetObject(nil, objectName)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", exceptions.ErrSendHTTPRequest(err)
	}

	contentType := resp.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	if err := uc.MediaStorage.PutObject(ctx, objectName, contentType, bytes.NewReader(payload), int64(len(payload))); err != nil {
		uc.Log.Warn("failed to cache media object", zap.Error(err))
	}

	return io.NopCloser(bytes.NewReader(payload)), contentType, nil
}

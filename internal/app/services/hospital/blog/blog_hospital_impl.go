package hospital_blog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/app/services/shared/ratelimiter"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/exceptions"
	"medicenter-service/internal/pkg/hospitaldto"
	"mime/multipart"
	"net/http"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	blogHospitalClientInstance contracts.BlogHospitalClient
	onceBlogHospitalClient     sync.Once
)

type blogHospitalClient struct {
	BaseUrl string
	Log     *zap.Logger
	Limiter *ratelimiter.UpstreamLimiter
}

func NewBlogHospitalClient(baseUrl string, logger *zap.Logger, limiter *ratelimiter.UpstreamLimiter) contracts.BlogHospitalClient {
	onceBlogHospitalClient.Do(func() {
		client := &blogHospitalClient{
			BaseUrl: baseUrl + constvars.ResourceBlog,
			Log:     logger,
			Limiter: limiter,
		}
		blogHospitalClientInstance = client
	})
	return blogHospitalClientInstance
}

func (c *blogHospitalClient) FindAll(ctx context.Context, queryParamsRequest *requests.QueryParams) ([]hospitaldto.BlogPost, error) {
	requestURL := c.BaseUrl
	if queryParamsRequest != nil && queryParamsRequest.Page > 0 {
		requestURL = fmt.Sprintf("%s?page=%s", c.BaseUrl, strconv.Itoa(queryParamsRequest.Page))
	}
	c.Log.Info("blogHospitalClient.FindAll called",
		zap.String(constvars.LoggingUpstreamUrlKey, requestURL),
	)

	body, err := c.do(ctx, constvars.MethodGet, requestURL, "", "", nil)
	if err != nil {
		return nil, err
	}

	var posts []hospitaldto.BlogPost
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceBlog)
	}
	return posts, nil
}

func (c *blogHospitalClient) FindLatest(ctx context.Context, count int) ([]hospitaldto.BlogPost, error) {
	requestURL := fmt.Sprintf("%s/latest?count=%d", c.BaseUrl, count)
	c.Log.Info("blogHospitalClient.FindLatest called",
		zap.String(constvars.LoggingUpstreamUrlKey, requestURL),
	)

	body, err := c.do(ctx, constvars.MethodGet, requestURL, "", "", nil)
	if err != nil {
		return nil, err
	}

	var posts []hospitaldto.BlogPost
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceBlog)
	}
	return posts, nil
}

func (c *blogHospitalClient) FindBySlug(ctx context.Context, slug string) (*hospitaldto.BlogPost, error) {
	requestURL := fmt.Sprintf("%s/%s", c.BaseUrl, slug)
	c.Log.Info("blogHospitalClient.FindBySlug called",
		zap.String(constvars.LoggingUpstreamUrlKey, requestURL),
	)

	body, err := c.do(ctx, constvars.MethodGet, requestURL, "", "", nil)
	if err != nil {
		return nil, err
	}

	var post hospitaldto.BlogPost
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceBlog)
	}
	return &post, nil
}

func (c *blogHospitalClient) GetStats(ctx context.Context, accessToken string) (*hospitaldto.BlogStats, error) {
	requestURL := c.BaseUrl + "/stats"
	c.Log.Info("blogHospitalClient.GetStats called",
		zap.String(constvars.LoggingUpstreamUrlKey, requestURL),
	)

	body, err := c.do(ctx, constvars.MethodGet, requestURL, accessToken, "", nil)
	if err != nil {
		return nil, err
	}

	var stats hospitaldto.BlogStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceBlog)
	}
	return &stats, nil
}

func (c *blogHospitalClient) CreateBlogPost(ctx context.Context, accessToken string, request *requests.CreateBlogPost) (*hospitaldto.BlogPost, error) {
	c.Log.Info("blogHospitalClient.CreateBlogPost called",
		zap.String(constvars.LoggingUpstreamUrlKey, c.BaseUrl),
	)

	contentType, buf, err := buildBlogForm(request.Title, request.Body, request.Images, request.ImageHeaders)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, constvars.MethodPost, c.BaseUrl, accessToken, contentType, buf)
	if err != nil {
		return nil, err
	}

	var post hospitaldto.BlogPost
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceBlog)
	}
	return &post, nil
}

func (c *blogHospitalClient) UpdateBlogPost(ctx context.Context, accessToken, slug string, request *requests.UpdateBlogPost) (*hospitaldto.BlogPost, error) {
	requestURL := fmt.Sprintf("%s/%s", c.BaseUrl, slug)
	c.Log.Info("blogHospitalClient.UpdateBlogPost called",
		zap.String(constvars.LoggingUpstreamUrlKey, requestURL),
	)

	contentType, buf, err := buildBlogForm(request.Title, request.Body, request.Images, request.ImageHeaders)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, constvars.MethodPut, requestURL, accessToken, contentType, buf)
	if err != nil {
		return nil, err
	}

	var post hospitaldto.BlogPost
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceBlog)
	}
	return &post, nil
}

func (c *blogHospitalClient) DeleteBlogPost(ctx context.Context, accessToken, slug string) error {
	requestURL := fmt.Sprintf("%s/%s", c.BaseUrl, slug)
	c.Log.Info("blogHospitalClient.DeleteBlogPost called",
		zap.String(constvars.LoggingUpstreamUrlKey, requestURL),
	)

	_, err := c.do(ctx, constvars.MethodDelete, requestURL, accessToken, "", nil)
	return err
}

// buildBlogForm assembles the multipart body; image parts are named image1..image3.
func buildBlogForm(title, postBody string, images []multipart.File, headers []*multipart.FileHeader) (string, io.Reader, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("title", title); err != nil {
		return "", nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if err := writer.WriteField("body", postBody); err != nil {
		return "", nil, exceptions.ErrCreateHTTPRequest(err)
	}

	for i, image := range images {
		if i >= constvars.BlogMaxImages || i >= len(headers) {
			break
		}
		part, err := writer.CreateFormFile(fmt.Sprintf("image%d", i+1), headers[i].Filename)
		if err != nil {
			return "", nil, exceptions.ErrCreateHTTPRequest(err)
		}
		if _, err := io.Copy(part, image); err != nil {
			return "", nil, exceptions.ErrCreateHTTPRequest(err)
		}
	}

	if err := writer.Close(); err != nil {
		return "", nil, exceptions.ErrCreateHTTPRequest(err)
	}

	return writer.FormDataContentType(), &buf, nil
}

func (c *blogHospitalClient) do(ctx context.Context, method, requestURL, accessToken, contentType string, body io.Reader) ([]byte, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		c.Log.Error("blogHospitalClient error creating HTTP request", zap.Error(err))
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	if accessToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+accessToken)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("blogHospitalClient error sending HTTP request", zap.Error(err))
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceBlog)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var upstreamErr hospitaldto.UpstreamError
		_ = json.Unmarshal(respBody, &upstreamErr)
		c.Log.Error("blogHospitalClient upstream rejected request",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("upstream_message", upstreamErr.ClientMessage()),
		)
		return nil, exceptions.ErrUpstreamRejected(resp.StatusCode, upstreamErr.ClientMessage())
	}

	return respBody, nil
}

package hospital_labs

import (
	"bytes"
	"context"
	"io"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/app/services/shared/ratelimiter"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/exceptions"
	"medicenter-service/internal/pkg/hospitaldto"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	labHospitalClientInstance contracts.LabHospitalClient
	onceLabHospitalClient     sync.Once
)

type labHospitalClient struct {
	BaseUrl string
	Log     *zap.Logger
	Limiter *ratelimiter.UpstreamLimiter
}

func NewLabHospitalClient(baseUrl string, logger *zap.Logger, limiter *ratelimiter.UpstreamLimiter) contracts.LabHospitalClient {
	onceLabHospitalClient.Do(func() {
		client := &labHospitalClient{
			BaseUrl: baseUrl,
			Log:     logger,
			Limiter: limiter,
		}
		labHospitalClientInstance = client
	})
	return labHospitalClientInstance
}

func (c *labHospitalClient) FindTestRequests(ctx context.Context, accessToken string, queryParams *requests.QueryParams) ([]hospitaldto.TestRequest, error) {
	requestURL := c.BaseUrl + constvars.ResourceTestRequests
	if queryParams != nil {
		query := url.Values{}
		if queryParams.Status != "" {
			query.Set("status", queryParams.Status)
		}
		if queryParams.Page > 0 {
			query.Set("page", strconv.Itoa(queryParams.Page))
		}
		if encoded := query.Encode(); encoded != "" {
			requestURL = requestURL + "?" + encoded
		}
	}
	c.Log.Info("labHospitalClient.FindTestRequests called",
		zap.String(constvars.LoggingUpstreamUrlKey, requestURL),
	)

	body, err := c.do(ctx, constvars.MethodGet, requestURL, accessToken, "", nil)
	if err != nil {
		return nil, err
	}

	var testRequests []hospitaldto.TestRequest
	if err := json.Unmarshal(body, &testRequests); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceTestRequests)
	}
	return testRequests, nil
}

func (c *labHospitalClient) CreateTestRequest(ctx context.Context, accessToken string, request *requests.CreateTestRequest) (*hospitaldto.TestRequest, error) {
	requestURL := c.BaseUrl + constvars.ResourceTestRequests
	c.Log.Info("labHospitalClient.CreateTestRequest called",
		zap.String(constvars.LoggingUpstreamUrlKey, requestURL),
	)

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	body, err := c.do(ctx, constvars.MethodPost, requestURL, accessToken, constvars.MIMEApplicationJSON, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var testRequest hospitaldto.TestRequest
	if err := json.Unmarshal(body, &testRequest); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceTestRequests)
	}
	return &testRequest, nil
}

func (c *labHospitalClient) CreateLabResult(ctx context.Context, accessToken string, request *requests.CreateLabResult) (*hospitaldto.LabResult, error) {
	requestURL := c.BaseUrl + constvars.ResourceLabResults
	c.Log.Info("labHospitalClient.CreateLabResult called",
		zap.String(constvars.LoggingUpstreamUrlKey, requestURL),
	)

	contentType, buf, err := buildLabResultForm(request)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, constvars.MethodPost, requestURL, accessToken, contentType, buf)
	if err != nil {
		return nil, err
	}

	var labResult hospitaldto.LabResult
	if err := json.Unmarshal(body, &labResult); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceLabResults)
	}
	return &labResult, nil
}

func buildLabResultForm(request *requests.CreateLabResult) (string, io.Reader, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"test_request": strconv.FormatInt(request.TestRequestID, 10),
		"result":       request.Result,
		"remarks":      request.Remarks,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return "", nil, exceptions.ErrCreateHTTPRequest(err)
		}
	}

	if request.Attachment != nil && request.AttachmentHeader != nil {
		part, err := writer.CreateFormFile("attachment", request.AttachmentHeader.Filename)
		if err != nil {
			return "", nil, exceptions.ErrCreateHTTPRequest(err)
		}
		if _, err := io.Copy(part, request.Attachment); err != nil {
			return "", nil, exceptions.ErrCreateHTTPRequest(err)
		}
	}

	if err := writer.Close(); err != nil {
		return "", nil, exceptions.ErrCreateHTTPRequest(err)
	}

	return writer.FormDataContentType(), &buf, nil
}

func (c *labHospitalClient) do(ctx context.Context, method, requestURL, accessToken, contentType string, body io.Reader) ([]byte, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		c.Log.Error("labHospitalClient error creating HTTP request", zap.Error(err))
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
		c.Log.Error("labHospitalClient error sending HTTP request", zap.Error(err))
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceTestRequests)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var upstreamErr hospitaldto.UpstreamError
		_ = json.Unmarshal(respBody, &upstreamErr)
		c.Log.Error("labHospitalClient upstream rejected request",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("upstream_message", upstreamErr.ClientMessage()),
		)
		return nil, exceptions.ErrUpstreamRejected(resp.StatusCode, upstreamErr.ClientMessage())
	}

	return respBody, nil
}

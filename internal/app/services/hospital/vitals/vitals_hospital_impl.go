package hospital_vitals

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
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	vitalsHospitalClientInstance contracts.VitalsHospitalClient
	onceVitalsHospitalClient     sync.Once
)

type vitalsHospitalClient struct {
	BaseUrl string
	Log     *zap.Logger
	Limiter *ratelimiter.UpstreamLimiter
}

func NewVitalsHospitalClient(baseUrl string, logger *zap.Logger, limiter *ratelimiter.UpstreamLimiter) contracts.VitalsHospitalClient {
	onceVitalsHospitalClient.Do(func() {
		client := &vitalsHospitalClient{
			BaseUrl: baseUrl,
			Log:     logger,
			Limiter: limiter,
		}
		vitalsHospitalClientInstance = client
	})
	return vitalsHospitalClientInstance
}

func (c *vitalsHospitalClient) FindVitalRequests(ctx context.Context, accessToken string, queryParams *requests.QueryParams) ([]hospitaldto.VitalRequest, error) {
	requestURL := c.BaseUrl + constvars.ResourceVitalRequests
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
	c.Log.Info("vitalsHospitalClient.FindVitalRequests called",
		zap.String(constvars.LoggingUpstreamUrlKey, requestURL),
	)

	body, err := c.do(ctx, constvars.MethodGet, requestURL, accessToken, "", nil)
	if err != nil {
		return nil, err
	}

	var vitalRequests []hospitaldto.VitalRequest
	if err := json.Unmarshal(body, &vitalRequests); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceVitalRequests)
	}
	return vitalRequests, nil
}

func (c *vitalsHospitalClient) CreateVitalRequest(ctx context.Context, accessToken string, request *requests.CreateVitalRequest) (*hospitaldto.VitalRequest, error) {
	requestURL := c.BaseUrl + constvars.ResourceVitalRequests
	c.Log.Info("vitalsHospitalClient.CreateVitalRequest called",
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

	var vitalRequest hospitaldto.VitalRequest
	if err := json.Unmarshal(body, &vitalRequest); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceVitalRequests)
	}
	return &vitalRequest, nil
}

func (c *vitalsHospitalClient) CreateVitals(ctx context.Context, accessToken string, request *requests.CreateVitals) (*hospitaldto.Vitals, error) {
	requestURL := c.BaseUrl + constvars.ResourceVitals
	c.Log.Info("vitalsHospitalClient.CreateVitals called",
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

	var vitals hospitaldto.Vitals
	if err := json.Unmarshal(body, &vitals); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceVitals)
	}
	return &vitals, nil
}

func (c *vitalsHospitalClient) do(ctx context.Context, method, requestURL, accessToken, contentType string, body io.Reader) ([]byte, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		c.Log.Error("vitalsHospitalClient error creating HTTP request", zap.Error(err))
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
		c.Log.Error("vitalsHospitalClient error sending HTTP request", zap.Error(err))
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceVitals)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var upstreamErr hospitaldto.UpstreamError
		_ = json.Unmarshal(respBody, &upstreamErr)
		c.Log.Error("vitalsHospitalClient upstream rejected request",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("upstream_message", upstreamErr.ClientMessage()),
		)
		return nil, exceptions.ErrUpstreamRejected(resp.StatusCode, upstreamErr.ClientMessage())
	}

	return respBody, nil
}

package hospital_appointments

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
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	appointmentHospitalClientInstance contracts.AppointmentHospitalClient
	onceAppointmentHospitalClient     sync.Once
)

type appointmentHospitalClient struct {
	BaseUrl string
	Log     *zap.Logger
	Limiter *ratelimiter.UpstreamLimiter
}

func NewAppointmentHospitalClient(baseUrl string, logger *zap.Logger, limiter *ratelimiter.UpstreamLimiter) contracts.AppointmentHospitalClient {
	onceAppointmentHospitalClient.Do(func() {
		client := &appointmentHospitalClient{
			BaseUrl: baseUrl + constvars.ResourceAppointments,
			Log:     logger,
			Limiter: limiter,
		}
		appointmentHospitalClientInstance = client
	})
	return appointmentHospitalClientInstance
}

func (c *appointmentHospitalClient) FindAll(ctx context.Context, accessToken string, queryParamsRequest *requests.QueryParams) ([]hospitaldto.Appointment, error) {
	queryParams := url.Values{}
	if queryParamsRequest != nil {
		if queryParamsRequest.Status != "" {
			queryParams.Set("status", queryParamsRequest.Status)
		}
		if queryParamsRequest.Page > 0 {
			queryParams.Set("page", strconv.Itoa(queryParamsRequest.Page))
		}
	}

	requestURL := c.BaseUrl
	if encoded := queryParams.Encode(); encoded != "" {
		requestURL = fmt.Sprintf("%s?%s", c.BaseUrl, encoded)
	}
	c.Log.Info("appointmentHospitalClient.FindAll called",
		zap.String(constvars.LoggingUpstreamUrlKey, requestURL),
	)

	body, err := c.do(ctx, constvars.MethodGet, requestURL, accessToken, nil)
	if err != nil {
		return nil, err
	}

	var appointments []hospitaldto.Appointment
	if err := json.Unmarshal(body, &appointments); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceAppointments)
	}
	return appointments, nil
}

func (c *appointmentHospitalClient) CreateAppointment(ctx context.Context, accessToken string, request *requests.CreateAppointment) (*hospitaldto.Appointment, error) {
	c.Log.Info("appointmentHospitalClient.CreateAppointment called",
		zap.String(constvars.LoggingUpstreamUrlKey, c.BaseUrl),
	)

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	body, err := c.do(ctx, constvars.MethodPost, c.BaseUrl, accessToken, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var appointment hospitaldto.Appointment
	if err := json.Unmarshal(body, &appointment); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceAppointments)
	}
	return &appointment, nil
}

func (c *appointmentHospitalClient) do(ctx context.Context, method, requestURL, accessToken string, body io.Reader) ([]byte, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		c.Log.Error("appointmentHospitalClient error creating HTTP request", zap.Error(err))
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if accessToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+accessToken)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("appointmentHospitalClient error sending HTTP request", zap.Error(err))
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceAppointments)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var upstreamErr hospitaldto.UpstreamError
		_ = json.Unmarshal(respBody, &upstreamErr)
		c.Log.Error("appointmentHospitalClient upstream rejected request",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("upstream_message", upstreamErr.ClientMessage()),
		)
		return nil, exceptions.ErrUpstreamRejected(resp.StatusCode, upstreamErr.ClientMessage())
	}

	return respBody, nil
}

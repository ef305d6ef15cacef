package hospital_reports

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
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	reportHospitalClientInstance contracts.ReportHospitalClient
	onceReportHospitalClient     sync.Once
)

type reportHospitalClient struct {
	BaseUrl string
	Log     *zap.Logger
	Limiter *ratelimiter.UpstreamLimiter
}

func NewReportHospitalClient(baseUrl string, logger *zap.Logger, limiter *ratelimiter.UpstreamLimiter) contracts.ReportHospitalClient {
	onceReportHospitalClient.Do(func() {
		client := &reportHospitalClient{
			BaseUrl: baseUrl + constvars.ResourceMedicalReports,
			Log:     logger,
			Limiter: limiter,
		}
		reportHospitalClientInstance = client
	})
	return reportHospitalClientInstance
}

func (c *reportHospitalClient) CreateMedicalReport(ctx context.Context, accessToken string, request *requests.CreateMedicalReport) (*hospitaldto.MedicalReport, error) {
	c.Log.Info("reportHospitalClient.CreateMedicalReport called",
		zap.String(constvars.LoggingUpstreamUrlKey, c.BaseUrl),
	)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewReader(payload))
	if err != nil {
		c.Log.Error("reportHospitalClient error creating HTTP request", zap.Error(err))
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+accessToken)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("reportHospitalClient error sending HTTP request", zap.Error(err))
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceMedicalReports)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var upstreamErr hospitaldto.UpstreamError
		_ = json.Unmarshal(respBody, &upstreamErr)
		c.Log.Error("reportHospitalClient upstream rejected request",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("upstream_message", upstreamErr.ClientMessage()),
		)
		return nil, exceptions.ErrUpstreamRejected(resp.StatusCode, upstreamErr.ClientMessage())
	}

	var report hospitaldto.MedicalReport
	if err := json.Unmarshal(respBody, &report); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceMedicalReports)
	}
	return &report, nil
}

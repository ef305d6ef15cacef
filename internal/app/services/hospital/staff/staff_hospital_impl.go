package hospital_staff

import (
	"context"
	"io"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/app/services/shared/ratelimiter"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/exceptions"
	"medicenter-service/internal/pkg/hospitaldto"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	staffHospitalClientInstance contracts.StaffHospitalClient
	onceStaffHospitalClient     sync.Once
)

type staffHospitalClient struct {
	BaseUrl string
	Log     *zap.Logger
	Limiter *ratelimiter.UpstreamLimiter
}

func NewStaffHospitalClient(baseUrl string, logger *zap.Logger, limiter *ratelimiter.UpstreamLimiter) contracts.StaffHospitalClient {
	onceStaffHospitalClient.Do(func() {
		client := &staffHospitalClient{
			BaseUrl: baseUrl + constvars.ResourceStaff,
			Log:     logger,
			Limiter: limiter,
		}
		staffHospitalClientInstance = client
	})
	return staffHospitalClientInstance
}

func (c *staffHospitalClient) FindAll(ctx context.Context, accessToken string) ([]hospitaldto.StaffMember, error) {
	c.Log.Info("staffHospitalClient.FindAll called",
		zap.String(constvars.LoggingUpstreamUrlKey, c.BaseUrl),
	)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		c.Log.Error("staffHospitalClient error creating HTTP request", zap.Error(err))
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+accessToken)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("staffHospitalClient error sending HTTP request", zap.Error(err))
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceStaff)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var upstreamErr hospitaldto.UpstreamError
		_ = json.Unmarshal(respBody, &upstreamErr)
		c.Log.Error("staffHospitalClient upstream rejected request",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("upstream_message", upstreamErr.ClientMessage()),
		)
		return nil, exceptions.ErrUpstreamRejected(resp.StatusCode, upstreamErr.ClientMessage())
	}

	var staff []hospitaldto.StaffMember
	if err := json.Unmarshal(respBody, &staff); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceStaff)
	}
	return staff, nil
}

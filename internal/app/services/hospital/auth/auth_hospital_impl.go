package hospital_auth

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
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	authHospitalClientInstance contracts.AuthHospitalClient
	onceAuthHospitalClient     sync.Once
)

type authHospitalClient struct {
	BaseUrl string
	Log     *zap.Logger
	Limiter *ratelimiter.UpstreamLimiter
}

func NewAuthHospitalClient(baseUrl string, logger *zap.Logger, limiter *ratelimiter.UpstreamLimiter) contracts.AuthHospitalClient {
	onceAuthHospitalClient.Do(func() {
		client := &authHospitalClient{
			BaseUrl: baseUrl + constvars.ResourceAuth,
			Log:     logger,
			Limiter: limiter,
		}
		authHospitalClientInstance = client
	})
	return authHospitalClientInstance
}

func (c *authHospitalClient) Login(ctx context.Context, username, password string) (*hospitaldto.LoginResult, error) {
	url := c.BaseUrl + "/login"
	c.Log.Info("authHospitalClient.Login called",
		zap.String(constvars.LoggingUpstreamUrlKey, url),
	)

	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	body, err := c.do(ctx, constvars.MethodPost, url, "", constvars.MIMEApplicationJSON, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var result hospitaldto.LoginResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceAuth)
	}
	return &result, nil
}

func (c *authHospitalClient) Register(ctx context.Context, request *requests.RegisterUser) error {
	url := c.BaseUrl + "/register"
	c.Log.Info("authHospitalClient.Register called",
		zap.String(constvars.LoggingUpstreamUrlKey, url),
	)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"username":  request.Username,
		"email":     request.Email,
		"fullname":  request.Fullname,
		"phone":     request.Phone,
		"gender":    request.Gender,
		"role":      request.Role,
		"password1": request.Password1,
		"password2": request.Password2,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return exceptions.ErrCreateHTTPRequest(err)
		}
	}

	if request.ProfilePix != nil && request.ProfilePixHeader != nil {
		part, err := writer.CreateFormFile("profile_pix", request.ProfilePixHeader.Filename)
		if err != nil {
			return exceptions.ErrCreateHTTPRequest(err)
		}
		if _, err := io.Copy(part, request.ProfilePix); err != nil {
			return exceptions.ErrCreateHTTPRequest(err)
		}
	}

	if err := writer.Close(); err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	_, err := c.do(ctx, constvars.MethodPost, url, "", writer.FormDataContentType(), &buf)
	return err
}

func (c *authHospitalClient) Logout(ctx context.Context, accessToken, refreshToken string) error {
	url := c.BaseUrl + "/logout"
	c.Log.Info("authHospitalClient.Logout called",
		zap.String(constvars.LoggingUpstreamUrlKey, url),
	)

	payload, err := json.Marshal(map[string]string{"refresh": refreshToken})
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	_, err = c.do(ctx, constvars.MethodPost, url, accessToken, constvars.MIMEApplicationJSON, bytes.NewReader(payload))
	return err
}

func (c *authHospitalClient) GetDashboard(ctx context.Context, accessToken string) (*hospitaldto.User, error) {
	url := c.BaseUrl + constvars.ResourceDashboard
	c.Log.Info("authHospitalClient.GetDashboard called",
		zap.String(constvars.LoggingUpstreamUrlKey, url),
	)

	body, err := c.do(ctx, constvars.MethodGet, url, accessToken, "", nil)
	if err != nil {
		return nil, err
	}

	user, err := hospitaldto.DecodeDashboardPayload(body)
	if err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceDashboard)
	}
	return user, nil
}

func (c *authHospitalClient) do(ctx context.Context, method, url, accessToken, contentType string, body io.Reader) ([]byte, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		c.Log.Error("authHospitalClient error creating HTTP request", zap.Error(err))
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
		c.Log.Error("authHospitalClient error sending HTTP request", zap.Error(err))
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceAuth)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var upstreamErr hospitaldto.UpstreamError
		_ = json.Unmarshal(respBody, &upstreamErr)
		c.Log.Error("authHospitalClient upstream rejected request",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("upstream_message", upstreamErr.ClientMessage()),
		)
		return nil, exceptions.ErrUpstreamRejected(resp.StatusCode, upstreamErr.ClientMessage())
	}

	return respBody, nil
}

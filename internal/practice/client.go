package practice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"recon_backend/internal/model"
	"strings"
	"time"
)

const DefaultServerURL = "http://127.0.0.1:8080"

var ErrServiceUnavailable = errors.New("practice service unavailable")

// APIError 服务端返回的 {"success":false,"error":...}
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// IsUnauthorized 是否为 401，会话据此跳转登录
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

type errorResponse struct {
	Error string `json:"error"`
}

type attemptRequest struct {
	QuestionID string `json:"questionId"`
	Selected   string `json:"selected"`
}

type credentialsRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Client 练习服务的 HTTP 客户端
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultServerURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &Client{
		baseURL:    baseURL,
		token:      strings.TrimSpace(token),
		httpClient: httpClient,
	}
}

func (c *Client) Me(ctx context.Context) (*model.Identity, error) {
	var identity model.Identity
	if err := c.doJSON(ctx, http.MethodGet, "/api/me", nil, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (c *Client) RandomQuestion(ctx context.Context) (*model.QuestionResponse, error) {
	var question model.QuestionResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/questions", nil, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (c *Client) SubmitAttempt(ctx context.Context, questionID, selected string) (*model.AttemptResult, error) {
	var result model.AttemptResult
	req := attemptRequest{QuestionID: questionID, Selected: selected}
	if err := c.doJSON(ctx, http.MethodPost, "/api/attempt", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Login 返回 JWT，调用方负责保存
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	req := credentialsRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/login", req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("login response did not include a token")
	}
	return resp.Token, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) error {
	req := credentialsRequest{Name: name, Email: email, Password: password}
	return c.doJSON(ctx, http.MethodPost, "/api/register", req, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/logout", nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Error) != "" {
			apiErr.Message = payload.Error
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(responseBody); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

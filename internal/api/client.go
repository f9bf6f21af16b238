package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/simplehac/simpletoolkit/internal/model"
)

// Endpoint paths
const (
	PathImageList      = "/api/dmg-list"
	PathPreferences    = "/api/preferences"
	PathCheckUpdate    = "/api/check-update"
	PathVerifyPath     = "/api/verify-path"
	PathStartDownload  = "/api/start-download"
	PathCancelDownload = "/api/cancel-download"
)

// Client defaults
const (
	DefaultTimeout     = 30 * time.Second
	CacheBusterParam   = "t"
	StatusSuccess      = "success"
	ContentTypeJSON    = "application/json"
	maxErrorBodyLength = 64 * 1024
)

// StartRequest is the body of a start-download call
type StartRequest struct {
	URL      string `json:"url"`
	SavePath string `json:"save_path"`
	Filename string `json:"filename"`
}

type imageListResponse struct {
	Status  string            `json:"status"`
	Data    []model.DiskImage `json:"data"`
	Message string            `json:"message,omitempty"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type startResponse struct {
	Success    bool   `json:"success"`
	DownloadID string `json:"download_id"`
	Message    string `json:"message,omitempty"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client talks to the backend service over HTTP
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL. A nil httpClient
// gets a default client with DefaultTimeout.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend URL must start with http:// or https://, got %q", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{baseURL: u, httpClient: httpClient}, nil
}

// BaseURL returns the backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ListImages fetches the disk-image catalog. A non-empty cacheBuster is sent
// as the t query parameter; the parameter is always present, as the backend expects.
func (c *Client) ListImages(ctx context.Context, cacheBuster string) ([]model.DiskImage, error) {
	query := url.Values{}
	query.Set(CacheBusterParam, cacheBuster)

	var resp imageListResponse
	if err := c.do(ctx, http.MethodGet, PathImageList, query, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Status != StatusSuccess {
		return nil, &RejectedError{Op: PathImageList, StatusCode: http.StatusOK, Message: resp.Message}
	}
	if resp.Data == nil {
		return []model.DiskImage{}, nil
	}
	return resp.Data, nil
}

// GetPreferences fetches stored preferences, normalized
func (c *Client) GetPreferences(ctx context.Context) (model.Preferences, error) {
	prefs := model.DefaultPreferences()
	if err := c.do(ctx, http.MethodGet, PathPreferences, nil, nil, &prefs); err != nil {
		return model.DefaultPreferences(), err
	}
	prefs.Normalize()
	return prefs, nil
}

// SavePreferences stores preferences
func (c *Client) SavePreferences(ctx context.Context, prefs model.Preferences) error {
	var resp statusResponse
	if err := c.do(ctx, http.MethodPost, PathPreferences, nil, prefs, &resp); err != nil {
		return err
	}
	if resp.Status != StatusSuccess {
		return &RejectedError{Op: PathPreferences, StatusCode: http.StatusOK, Message: resp.Message}
	}
	return nil
}

// CheckUpdate asks the backend for the latest release
func (c *Client) CheckUpdate(ctx context.Context) (*model.UpdateInfo, error) {
	var info model.UpdateInfo
	if err := c.do(ctx, http.MethodGet, PathCheckUpdate, nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// VerifyPath asks the backend to confirm path is writable
func (c *Client) VerifyPath(ctx context.Context, path string) error {
	var resp successResponse
	body := map[string]string{"path": path}
	if err := c.do(ctx, http.MethodPost, PathVerifyPath, nil, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &RejectedError{Op: PathVerifyPath, StatusCode: http.StatusOK, Message: resp.Message}
	}
	return nil
}

// StartDownload asks the backend to start a transfer
func (c *Client) StartDownload(ctx context.Context, req StartRequest) (string, error) {
	var resp startResponse
	if err := c.do(ctx, http.MethodPost, PathStartDownload, nil, req, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &RejectedError{Op: PathStartDownload, StatusCode: http.StatusOK, Message: resp.Message}
	}
	if resp.DownloadID == "" {
		return "", fmt.Errorf("%s: %w", PathStartDownload, ErrEmptyResponse)
	}
	return resp.DownloadID, nil
}

// CancelDownload asks the backend to stop a transfer
func (c *Client) CancelDownload(ctx context.Context, downloadID string) (bool, error) {
	var resp successResponse
	body := map[string]string{"download_id": downloadID}
	if err := c.do(ctx, http.MethodPost, PathCancelDownload, nil, body, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}

// do sends a JSON request and decodes the JSON response into out. Non-2xx
// responses are returned as *RejectedError carrying the backend message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL.JoinPath(path)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", path, err)
	}
	req.Header.Set("Accept", ContentTypeJSON)
	if in != nil {
		req.Header.Set("Content-Type", ContentTypeJSON)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		msg := eb.Message
		if msg == "" {
			msg = eb.Error
		}
		return &RejectedError{Op: path, StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return fmt.Errorf("%s: %w", path, ErrEmptyResponse)
		}
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/autohub/autohub-cli/internal/client/models"
)

// HTTPClient implements Client over the backend's JSON/HTTPS contract.
// The bearer token is held internally and attached to authenticated calls;
// the session store installs and clears it via SetToken.
type HTTPClient struct {
	baseURL string
	hc      *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a client for the backend rooted at baseURL
// (e.g. "https://host/api"). Every request is bounded by timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do performs one round-trip: encodes body (if any), attaches the bearer
// token (if present), and decodes a 2xx response into out (if non-nil).
// Transport failures map to ErrUnavailable, 401-equivalents to
// ErrUnauthorized, 404 to ErrNotFound; any other non-2xx becomes a
// StatusError carrying the server's message.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t := c.bearer(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapStatus(resp *http.Response) error {
	if resp.StatusCode < 300 {
		return nil
	}
	msg := decodeMessage(resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		if msg != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		}
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return &StatusError{Status: resp.StatusCode, Message: msg}
}

func decodeMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.Message
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", req, nil)
}

func (c *HTTPClient) Verify(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, "/auth/verify/"+url.PathEscape(token), nil, nil)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPatch, "/auth/profile", upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdateProfilePicture(ctx context.Context, pictureURL string) (*models.User, error) {
	req := struct {
		ProfilePicture string `json:"profilePicture"`
	}{ProfilePicture: pictureURL}

	var user models.User
	if err := c.do(ctx, http.MethodPatch, "/auth/profile-picture", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListCars(ctx context.Context) ([]models.Car, error) {
	var cars []models.Car
	if err := c.do(ctx, http.MethodGet, "/products", nil, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (c *HTTPClient) GetCar(ctx context.Context, id string) (*models.Car, error) {
	var car models.Car
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &car); err != nil {
		return nil, err
	}
	return &car, nil
}

func (c *HTTPClient) MyCars(ctx context.Context) ([]models.Car, error) {
	var cars []models.Car
	if err := c.do(ctx, http.MethodGet, "/products/my-cars", nil, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (c *HTTPClient) CreateCar(ctx context.Context, car models.Car) (*models.Car, error) {
	var created models.Car
	if err := c.do(ctx, http.MethodPost, "/products", car, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) DeleteCar(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}

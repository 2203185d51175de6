package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/okugula/work-kg-admin/internal/config"
	"github.com/okugula/work-kg-admin/internal/logger"
	"github.com/okugula/work-kg-admin/internal/store"
	"github.com/okugula/work-kg-admin/internal/utils"
	"github.com/okugula/work-kg-admin/models"
)

const requestIDHeader = "X-Request-ID"

type httpAdminAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	// kv is nil when no durable storage is available.
	kv store.KeyValueStore

	mu    sync.RWMutex
	token string
	// readFailed is set after a logged token read failure; the next failure
	// is not logged again until a read succeeds or SetToken runs.
	readFailed bool

	logger *logger.Logger
}

// NewHTTPAdminAdapter constructs the HTTP/REST implementation of [AdminAPI].
// The base URL keeps its path prefix (e.g. "/api"); endpoints are appended to
// it. kv may be nil, in which case the token lives in memory only.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAdminAdapter(cfg config.ClientAdapter, kv store.KeyValueStore, logger *logger.Logger) (AdminAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAdminAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		kv:     kv,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdminAdapter) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = token
	h.readFailed = false
	if h.kv == nil {
		return nil
	}

	var err error
	if token != "" {
		err = h.kv.Set(ctx, store.TokenKey, token)
	} else {
		err = h.kv.Remove(ctx, store.TokenKey)
	}
	if err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	return nil
}

func (h *httpAdminAdapter) GetToken(ctx context.Context) string {
	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()
	if token != "" || h.kv == nil {
		return token
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// another caller may have resolved or set it meanwhile
	if h.token != "" {
		return h.token
	}

	stored, err := h.kv.Get(ctx, store.TokenKey)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) && !h.readFailed {
			h.logger.Err(err).Str("func", "httpAdminAdapter.GetToken").Msg("failed to read stored token")
			h.readFailed = true
		}
		return ""
	}

	h.readFailed = false
	h.token = strings.TrimSpace(stored)
	return h.token
}

func (h *httpAdminAdapter) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	resp, err := request[models.LoginResponse](ctx, h, http.MethodPost, "/auth/login",
		models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.LoginResponse{}, err
	}

	if err = h.SetToken(ctx, resp.Token); err != nil {
		h.logger.Warn().Err(err).Str("func", "httpAdminAdapter.Login").Msg("token kept in memory only")
	}

	return resp, nil
}

func (h *httpAdminAdapter) GetMe(ctx context.Context) (models.AdminUser, error) {
	return request[models.AdminUser](ctx, h, http.MethodGet, "/auth/me", nil)
}

func (h *httpAdminAdapter) Logout(ctx context.Context) error {
	errs := []error{h.SetToken(ctx, "")}

	if h.kv != nil {
		for _, key := range []string{store.UserKey, store.RoleKey} {
			if err := h.kv.Remove(ctx, key); err != nil {
				errs = append(errs, fmt.Errorf("remove %s: %w", key, err))
			}
		}
	}

	return errors.Join(errs...)
}

func (h *httpAdminAdapter) GetJobs(ctx context.Context) ([]models.Job, error) {
	return request[[]models.Job](ctx, h, http.MethodGet, "/jobs", nil)
}

func (h *httpAdminAdapter) GetUsers(ctx context.Context) ([]models.User, error) {
	return request[[]models.User](ctx, h, http.MethodGet, "/users", nil)
}

func (h *httpAdminAdapter) GetResumes(ctx context.Context) ([]models.Resume, error) {
	return request[[]models.Resume](ctx, h, http.MethodGet, "/resumes", nil)
}

func (h *httpAdminAdapter) GetStats(ctx context.Context) (models.Stats, error) {
	return request[models.Stats](ctx, h, http.MethodGet, "/stats", nil)
}

func (h *httpAdminAdapter) CreateJob(ctx context.Context, input models.JobInput) (models.Job, error) {
	return request[models.Job](ctx, h, http.MethodPost, "/jobs", input)
}

func (h *httpAdminAdapter) UpdateJob(ctx context.Context, id int64, input models.JobInput) (models.Job, error) {
	return request[models.Job](ctx, h, http.MethodPut, jobPath(id), input)
}

func (h *httpAdminAdapter) DeleteJob(ctx context.Context, id int64) error {
	_, err := request[struct{}](ctx, h, http.MethodDelete, jobPath(id), nil)
	return err
}

func jobPath(id int64) string {
	return "/jobs/" + strconv.FormatInt(id, 10)
}

// request sends one call to the backend and decodes a 2xx body into T.
// A 204 response yields the zero T without decoding. body, when non-nil, is
// sent as JSON.
func request[T any](ctx context.Context, h *httpAdminAdapter, method, endpoint string, body any) (T, error) {
	var result T

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID)
	if token := h.GetToken(ctx); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		h.logger.Err(err).
			Str("func", "request").
			Str("method", method).
			Str("endpoint", endpoint).
			Str("request_id", requestID).
			Msg("request failed before a response was received")
		return result, fmt.Errorf("%s %s request: %w", method, endpoint, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Str("request_id", requestID).
		Dur("took", resp.Time()).
		Msg("admin api call")

	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	if resp.StatusCode() == http.StatusNoContent {
		return result, nil
	}

	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("%w: %s %s: %w", ErrDecodeResponse, method, endpoint, err)
	}

	return result, nil
}

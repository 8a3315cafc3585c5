package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rentora/admin-cli/internal/domain"
	"github.com/rentora/admin-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

// Client talks to the Rentora admin API. Authorized calls carry the
// session token as a bearer credential; any 401-class response maps to
// domain.ErrSessionExpired regardless of endpoint.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.ModerationGateway = (*Client)(nil)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Admin struct {
		Name    string `json:"name"`
		Role    string `json:"role"`
		IsAgent bool   `json:"isAgent"`
	} `json:"admin"`
}

type blockResponse struct {
	Message   string `json:"message"`
	IsBlocked bool   `json:"isBlocked"`
}

type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) Login(ctx context.Context, email, password string) (string, domain.Profile, error) {
	if email == "" || password == "" {
		return "", domain.Profile{}, errors.New("email and password are required")
	}

	body, err := c.do(ctx, http.MethodPost, "/api/admin/login", "", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", domain.Profile{}, fmt.Errorf("login: %w", err)
	}

	var payload loginResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", domain.Profile{}, fmt.Errorf("decode login response: %w", err)
	}
	if payload.Token == "" || payload.Admin.Name == "" {
		return "", domain.Profile{}, errors.New("login response missing token or profile")
	}

	profile := domain.Profile{
		DisplayName:     payload.Admin.Name,
		Role:            domain.Role(payload.Admin.Role),
		RestrictedAgent: payload.Admin.IsAgent,
	}

	return payload.Token, profile, nil
}

func (c *Client) ListRecords(ctx context.Context, token string, key domain.CollectionKey) ([]domain.Record, error) {
	switch key {
	case domain.CollectionOwners:
		return c.listUsers(ctx, token, "owner")
	case domain.CollectionUsers:
		return c.listUsers(ctx, token, "user")
	case domain.CollectionProperties:
		return c.listProperties(ctx, token)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, key)
	}
}

func (c *Client) listUsers(ctx context.Context, token, role string) ([]domain.Record, error) {
	path := "/api/users/list?role=" + url.QueryEscape(role)
	body, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var payload struct {
		Users []userPayload `json:"users"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode users response: %w", err)
	}

	records := make([]domain.Record, 0, len(payload.Users))
	for _, user := range payload.Users {
		records = append(records, user.toRecord())
	}

	return records, nil
}

func (c *Client) listProperties(ctx context.Context, token string) ([]domain.Record, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/properties/list", token, nil)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	items := unwrapListPayload(body)
	records := make([]domain.Record, 0, len(items))
	for _, item := range items {
		var property propertyPayload
		if err := json.Unmarshal(item, &property); err != nil {
			return nil, fmt.Errorf("decode property entry: %w", err)
		}
		records = append(records, property.toRecord())
	}

	return records, nil
}

func (c *Client) ApplyAction(ctx context.Context, token string, key domain.CollectionKey, id string, action domain.ModerationAction) (domain.ActionResult, error) {
	if id == "" {
		return domain.ActionResult{}, errors.New("record id is required")
	}

	switch {
	case (key == domain.CollectionOwners || key == domain.CollectionUsers) && action == domain.ActionToggleBlock:
		return c.toggleUserBlock(ctx, token, id)
	case key == domain.CollectionProperties && action == domain.ActionApprove:
		return c.setPropertyApproval(ctx, token, "approve", id, domain.StatusPublished)
	case key == domain.CollectionProperties && action == domain.ActionReject:
		return c.setPropertyApproval(ctx, token, "disapprove", id, domain.StatusPending)
	case key == domain.CollectionProperties && action == domain.ActionDelete:
		return c.deleteProperty(ctx, token, id)
	default:
		return domain.ActionResult{}, fmt.Errorf("action %q is not supported for collection %q", action, key)
	}
}

func (c *Client) toggleUserBlock(ctx context.Context, token, id string) (domain.ActionResult, error) {
	body, err := c.do(ctx, http.MethodPut, "/api/users/block/"+url.PathEscape(id), token, nil)
	if err != nil {
		return domain.ActionResult{}, fmt.Errorf("toggle block: %w", err)
	}

	var payload blockResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.ActionResult{}, fmt.Errorf("decode block response: %w", err)
	}

	status := domain.StatusActive
	if payload.IsBlocked {
		status = domain.StatusBlocked
	}

	return domain.ActionResult{Status: status, Message: payload.Message}, nil
}

func (c *Client) setPropertyApproval(ctx context.Context, token, verb, id string, status domain.ModerationStatus) (domain.ActionResult, error) {
	body, err := c.do(ctx, http.MethodPut, "/api/properties/"+verb+"/"+url.PathEscape(id), token, nil)
	if err != nil {
		return domain.ActionResult{}, fmt.Errorf("%s property: %w", verb, err)
	}

	// The endpoint reports success only; the action verb determines the
	// resulting state.
	return domain.ActionResult{Status: status, Message: decodeMessage(body)}, nil
}

func (c *Client) deleteProperty(ctx context.Context, token, id string) (domain.ActionResult, error) {
	body, err := c.do(ctx, http.MethodDelete, "/api/properties/delete/"+url.PathEscape(id), token, nil)
	if err != nil {
		return domain.ActionResult{}, fmt.Errorf("delete property: %w", err)
	}

	return domain.ActionResult{Removed: true, Message: decodeMessage(body)}, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, payload any) ([]byte, error) {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("User-Agent", "ra/admin")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		// A 401-class response invalidates the presented session. When no
		// bearer credential was sent (login) it is an ordinary failure.
		if token == "" {
			return nil, errors.New(serviceMessage(resp.StatusCode, body))
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionExpired, serviceMessage(resp.StatusCode, body))
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.New(serviceMessage(resp.StatusCode, body))
	}

	return body, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// decodeMessage extracts the optional message from a success body.
func decodeMessage(body []byte) string {
	var payload messageResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	return payload.Message
}

// serviceMessage surfaces the service-provided message verbatim when
// one is present, falling back to the status code.
func serviceMessage(statusCode int, body []byte) string {
	var payload messageResponse
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	return fmt.Sprintf("status %d", statusCode)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}

	return endpoint.String(), nil
}

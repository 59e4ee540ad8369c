// Package api is the HTTP client for the admin backend. Every response is an
// envelope {success, data}; reads treat success:false as an error, mutating
// calls surface it as an ActionOutcome so the UI can show the server detail.
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

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"drdash/internal/jsonutil"
	"drdash/internal/session"
	"drdash/internal/trace"
)

// Client talks to the admin backend API.
type Client struct {
	baseURL string
	http    *http.Client
	sess    *session.Session
}

// NewClient creates a client for the given base URL. The timeout bounds every
// call client-side so a stalled request settles instead of pinning an action
// control disabled forever. sess may be nil for unauthenticated use.
func NewClient(baseURL string, timeout time.Duration, sess *session.Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		sess:    sess,
	}
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// RecoveryStatus fetches the recovery posture snapshot.
func (c *Client) RecoveryStatus(ctx context.Context) (*RecoveryStatus, error) {
	env, err := c.do(ctx, http.MethodGet, "/disaster-recovery/status", nil)
	if err != nil {
		return nil, err
	}
	var status RecoveryStatus
	if err := jsonutil.UnmarshalWithContext(env.Data, &status, "decode recovery status"); err != nil {
		return nil, err
	}
	return &status, nil
}

// RecoveryPlans fetches the list of recovery plans.
func (c *Client) RecoveryPlans(ctx context.Context) ([]RecoveryPlan, error) {
	env, err := c.do(ctx, http.MethodGet, "/disaster-recovery/plans", nil)
	if err != nil {
		return nil, err
	}
	var plans []RecoveryPlan
	if err := jsonutil.UnmarshalWithContext(env.Data, &plans, "decode recovery plans"); err != nil {
		return nil, err
	}
	return plans, nil
}

// CreatePlan creates a recovery plan with the given config object.
func (c *Client) CreatePlan(ctx context.Context, name string, config map[string]interface{}) (ActionOutcome, error) {
	body := map[string]interface{}{
		"plan_name":   name,
		"plan_config": config,
	}
	return c.action(ctx, http.MethodPost, "/disaster-recovery/plans/create", body)
}

// ExecutePlan runs the named recovery plan on the server.
func (c *Client) ExecutePlan(ctx context.Context, name string) (ActionOutcome, error) {
	return c.action(ctx, http.MethodPost, "/disaster-recovery/plans/"+url.PathEscape(name)+"/execute", nil)
}

// TestPlan runs a non-destructive test of the named plan.
func (c *Client) TestPlan(ctx context.Context, name string) (ActionOutcome, error) {
	return c.action(ctx, http.MethodPost, "/disaster-recovery/plans/"+url.PathEscape(name)+"/test", nil)
}

// DeletePlan removes the named plan.
func (c *Client) DeletePlan(ctx context.Context, name string) (ActionOutcome, error) {
	return c.action(ctx, http.MethodDelete, "/disaster-recovery/plans/"+url.PathEscape(name), nil)
}

// action issues a mutating call and decodes the outcome. A success:false
// envelope is not an error here; the caller inspects ActionOutcome.
func (c *Client) action(ctx context.Context, method, path string, body interface{}) (ActionOutcome, error) {
	env, err := c.request(ctx, method, path, body)
	if err != nil {
		return ActionOutcome{}, err
	}
	var outcome ActionOutcome
	if len(env.Data) > 0 {
		if err := jsonutil.UnmarshalWithContext(env.Data, &outcome, "decode action result"); err != nil {
			return ActionOutcome{}, err
		}
	}
	outcome.Success = env.Success
	return outcome, nil
}

// do issues a read call; success:false envelopes are returned as errors.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	env, err := c.request(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("%s %s: server reported failure", method, path)
	}
	return env, nil
}

func (c *Client) request(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	ctx, span := trace.Tracer("drdash/api").Start(ctx, method+" "+path)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.url", c.baseURL+path),
	)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sess != nil {
		req.Header.Set("Authorization", "Bearer "+c.sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		span.SetStatus(codes.Error, resp.Status)
		return nil, fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return &env, nil
}

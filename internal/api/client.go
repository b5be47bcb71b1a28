// Package api is the HTTP client for the Perfily scoring service, the only
// wire contract of the funnel: start-test and get-result. Responses are
// validated against JSON schemas at the decode boundary before any typed
// unmarshalling.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production scoring API.
const DefaultBaseURL = "https://perfily-teste-de-perfil-api-678525805394.europe-west1.run.app"

const (
	startTestPath = "/app/iniciar-teste"
	getResultPath = "/app/obter-resultado"

	defaultTimeout = 30 * time.Second
)

// Client calls the scoring API.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// NewClient creates a client for the given base URL. An empty baseURL means
// the production API.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartTest begins a new test session for a two-letter test code and returns
// the session metadata together with the decoded question set.
func (c *Client) StartTest(ctx context.Context, testCode string) (*StartSession, error) {
	body, err := c.post(ctx, startTestPath, map[string]string{"tipoTeste": testCode})
	if err != nil {
		return nil, err
	}

	if err := validatePayload(startSchema, body); err != nil {
		return nil, err
	}

	var raw startResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ErrInvalidPayload{Err: fmt.Errorf("unmarshal start response: %w", err)}
	}

	questions, err := decodeQuestions(raw.Teste.Perguntas)
	if err != nil {
		return nil, err
	}

	return &StartSession{
		Session: SessionInfo{
			ID:        raw.Sessao.Identificador,
			Version:   raw.Sessao.Version,
			Status:    raw.Sessao.Status,
			StartedAt: raw.Sessao.HorarioInicio,
		},
		Title:            raw.Teste.Titulo,
		Description:      raw.Teste.Descricao,
		EstimatedMinutes: raw.Teste.MinutosEstimados,
		TotalQuestions:   raw.Teste.QuantidadeTotalPergunta,
		Questions:        questions,
	}, nil
}

// GetResult submits collected answers and returns the scoring result. The
// same operation serves initial scoring and payment-unlock polling; the
// backend scores a fixed answer set deterministically.
func (c *Client) GetResult(ctx context.Context, req ResultRequest) (*Result, error) {
	body, err := c.post(ctx, getResultPath, req)
	if err != nil {
		return nil, err
	}

	if err := validatePayload(resultSchema, body); err != nil {
		return nil, err
	}

	var res Result
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, &ErrInvalidPayload{Err: fmt.Errorf("unmarshal result: %w", err)}
	}
	return &res, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ErrUnavailable{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}
	return body, nil
}

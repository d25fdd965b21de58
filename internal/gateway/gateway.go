// Package gateway is the thin boundary between the calculation core
// and the remote cadastro backend: a uniform asynchronous CRUD contract
// over the backend's REST API. It performs no retries — retry policy,
// if any, belongs to the caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-folha/internal/shared/apperror"
)

// Record is one entity snapshot as the backend serializes it.
type Record map[string]any

// Filter is passed as query parameters on list fetches.
type Filter map[string]string

// Credential is the bearer token the surrounding system obtained from
// its authentication collaborator. Injected here instead of read from
// ambient storage so the gateway is testable with fake credentials.
type Credential struct {
	Token string
}

//go:generate mockgen -source=gateway.go -destination=mock/gateway_mock.go -package=mock
type Gateway interface {
	FetchOne(ctx context.Context, kind, id string) (Record, error)
	FetchMany(ctx context.Context, kind string, filter Filter) ([]Record, error)
	Create(ctx context.Context, kind string, record Record) (Record, error)
	Update(ctx context.Context, kind, id string, record Record) (Record, error)
	Delete(ctx context.Context, kind, id string) error
}

var ErrNotFound = apperror.New(
	apperror.CodeNotFound,
	"registro não encontrado no backend",
	http.StatusNotFound,
)

var ErrUnknownKind = apperror.New(
	apperror.CodeInvalidInput,
	"entidade desconhecida",
	http.StatusBadRequest,
)

// ValidationRejectedError is the remote backend's own validation
// verdict, distinct from the local pre-check in internal/validation.
type ValidationRejectedError struct {
	Message string
}

func (e *ValidationRejectedError) Error() string {
	return "backend rejected record: " + e.Message
}

// TransportError covers network failures and unexpected statuses.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway transport: %v", e.Err)
	}
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("gateway transport: http %d: %s", e.StatusCode, msg)
}

func (e *TransportError) Unwrap() error { return e.Err }

// kindPaths maps an entity kind to its backend base path. Each path is
// slash-terminated and detail routes append "{id}/".
var kindPaths = map[string]string{
	"funcionario":  "funcionarios/",
	"empresa":      "empresas/",
	"cargo":        "cargos/",
	"funcao":       "funcoes/",
	"sindicato":    "sindicatos/",
	"centro_custo": "centro-custos/",
	"conta":        "contas/",
	"aliquota":     "aliquotas/",
	"plano_conta":  "plano-contas/",
	"cliente":      "clientes/",
	"servico":      "servicos/",
}

type httpGateway struct {
	baseURL string
	cred    Credential
	client  *http.Client
}

// NewHTTP builds a Gateway over the backend at baseURL.
func NewHTTP(baseURL string, cred Credential) (Gateway, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("gateway: missing base url")
	}
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.New("gateway: invalid base url")
	}

	return &httpGateway{
		baseURL: baseURL,
		cred:    cred,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (g *httpGateway) FetchOne(ctx context.Context, kind, id string) (Record, error) {
	path, err := g.detailPath(kind, id)
	if err != nil {
		return nil, err
	}

	var out Record
	if err := g.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *httpGateway) FetchMany(ctx context.Context, kind string, filter Filter) ([]Record, error) {
	base, ok := kindPaths[kind]
	if !ok {
		return nil, ErrUnknownKind
	}

	path := base
	if len(filter) > 0 {
		q := url.Values{}
		for k, v := range filter {
			q.Set(k, v)
		}
		path += "?" + q.Encode()
	}

	var out []Record
	if err := g.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *httpGateway) Create(ctx context.Context, kind string, record Record) (Record, error) {
	base, ok := kindPaths[kind]
	if !ok {
		return nil, ErrUnknownKind
	}

	var out Record
	if err := g.do(ctx, http.MethodPost, base, record, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *httpGateway) Update(ctx context.Context, kind, id string, record Record) (Record, error) {
	path, err := g.detailPath(kind, id)
	if err != nil {
		return nil, err
	}

	var out Record
	if err := g.do(ctx, http.MethodPut, path, record, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *httpGateway) Delete(ctx context.Context, kind, id string) error {
	path, err := g.detailPath(kind, id)
	if err != nil {
		return err
	}
	return g.do(ctx, http.MethodDelete, path, nil, nil)
}

func (g *httpGateway) detailPath(kind, id string) (string, error) {
	base, ok := kindPaths[kind]
	if !ok {
		return "", ErrUnknownKind
	}
	return base + url.PathEscape(id) + "/", nil
}

// do performs one request. Any 2xx is success; 204 leaves out untouched
// (no body to decode). Non-2xx responses are mapped to the error
// taxonomy using the backend's JSON "message" field when parseable,
// else the HTTP status text.
func (g *httpGateway) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Err: err}
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+"/"+path, reqBody)
	if err != nil {
		return &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.cred.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.cred.Token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return mapStatusError(resp)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

func mapStatusError(resp *http.Response) error {
	message := http.StatusText(resp.StatusCode)
	var errBody struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Message != "" {
		message = errBody.Message
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return apperror.Wrap(ErrNotFound, ErrNotFound.Code, message, ErrNotFound.HTTPStatus)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &ValidationRejectedError{Message: message}
	default:
		return &TransportError{StatusCode: resp.StatusCode, Message: message}
	}
}

// Package rest implementa el adapter de recurso REST genérico.
//
// Cada operación mapea a un request contra {base}/{resource} (colección) o
// {base}/{resource}/{id} (miembro). El verbo de update es PATCH en todos los
// casos; el backend debe aceptar merge parcial.
//
// Política de errores: ningún error crudo de red cruza el borde del adapter.
// Se atrapa, se loguea, se notifica al colaborador de notificaciones y se
// retorna el sentinel correspondiente (404→ErrNotFound, 409→ErrConflict,
// resto→ErrUnavailable) con el resultado neutro de la operación.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dropDatabas3/eventkit/internal/notify"
	"github.com/dropDatabas3/eventkit/internal/observability/logger"
	"github.com/dropDatabas3/eventkit/internal/storage"
)

const defaultTimeout = 15 * time.Second

// Client implementa storage.Crud[T, P] contra un recurso REST.
type Client[T storage.Entity, P any] struct {
	base     string
	resource string
	http     *http.Client
	notifier storage.Notifier
}

// New crea el adapter REST para un recurso.
func New[T storage.Entity, P any](cfg storage.RESTConfig) (*Client[T, P], error) {
	if cfg.BaseURL == "" || cfg.Resource == "" {
		return nil, fmt.Errorf("%w: rest requiere BaseURL y Resource", storage.ErrInvalidConfig)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.NewLog()
	}

	return &Client[T, P]{
		base:     strings.TrimRight(cfg.BaseURL, "/"),
		resource: strings.Trim(cfg.Resource, "/"),
		http:     &http.Client{Timeout: timeout},
		notifier: notifier,
	}, nil
}

func (c *Client[T, P]) Kind() storage.BackendKind { return storage.BackendREST }

func (c *Client[T, P]) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *Client[T, P]) collectionURL() string {
	return c.base + "/" + c.resource
}

func (c *Client[T, P]) memberURL(id string) string {
	return c.collectionURL() + "/" + url.PathEscape(id)
}

// do ejecuta el request y retorna status + body. Los errores de transporte
// ya vienen clasificados como ErrUnavailable.
func (c *Client[T, P]) do(ctx context.Context, method, rawURL string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: build request: %v", storage.ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s %s: %v", storage.ErrUnavailable, method, rawURL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: read body: %v", storage.ErrUnavailable, err)
	}
	return resp.StatusCode, raw, nil
}

// fail loguea y notifica un fallo de transporte, y retorna el error envuelto.
func (c *Client[T, P]) fail(ctx context.Context, op string, err error) error {
	logger.From(ctx).Named("rest").Error("request failed",
		logger.Layer("adapter"),
		logger.Op(op),
		logger.Resource(c.resource),
		logger.Err(err),
	)
	c.notifier.Notify(ctx, notify.LevelError, "storage backend unavailable",
		fmt.Sprintf("%s %s: %v", op, c.resource, err))
	return err
}

func statusErr(status int, raw []byte) error {
	switch {
	case status == http.StatusNotFound:
		return storage.ErrNotFound
	case status == http.StatusConflict:
		return storage.ErrConflict
	default:
		detail := strings.TrimSpace(string(raw))
		if len(detail) > 200 {
			detail = detail[:200]
		}
		return fmt.Errorf("%w: status %d: %s", storage.ErrUnavailable, status, detail)
	}
}

// GetAll lista con paginación. El endpoint puede responder el sobre
// {data,total,page,limit} o un array pelado; en el segundo caso se normaliza
// usando el largo del array como total y los page/limit solicitados.
func (c *Client[T, P]) GetAll(ctx context.Context, page, limit int) (storage.PaginatedResponse[T], error) {
	empty := storage.PaginatedResponse[T]{Data: []T{}, Page: page, Limit: limit}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	status, raw, err := c.do(ctx, http.MethodGet, c.collectionURL()+"?"+q.Encode(), nil)
	if err != nil {
		return empty, c.fail(ctx, "GetAll", err)
	}
	if status < 200 || status >= 300 {
		return empty, c.fail(ctx, "GetAll", statusErr(status, raw))
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		// Array pelado, sin sobre de paginación.
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return empty, c.fail(ctx, "GetAll", fmt.Errorf("%w: malformed list body: %v", storage.ErrUnavailable, err))
		}
		return storage.PaginatedResponse[T]{Data: items, Total: len(items), Page: page, Limit: limit}, nil
	}

	var resp storage.PaginatedResponse[T]
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return empty, c.fail(ctx, "GetAll", fmt.Errorf("%w: malformed envelope: %v", storage.ErrUnavailable, err))
	}
	if resp.Data == nil {
		resp.Data = []T{}
	}
	if resp.Page == 0 {
		resp.Page = page
	}
	if resp.Limit == 0 {
		resp.Limit = limit
	}
	if resp.Total == 0 && len(resp.Data) > 0 {
		resp.Total = len(resp.Data)
	}
	return resp, nil
}

func (c *Client[T, P]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T

	status, raw, err := c.do(ctx, http.MethodGet, c.memberURL(id), nil)
	if err != nil {
		return zero, c.fail(ctx, "GetByID", err)
	}
	if status == http.StatusNotFound {
		// Negativo esperado: no se notifica.
		return zero, storage.ErrNotFound
	}
	if status < 200 || status >= 300 {
		return zero, c.fail(ctx, "GetByID", statusErr(status, raw))
	}

	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return zero, c.fail(ctx, "GetByID", fmt.Errorf("%w: malformed body: %v", storage.ErrUnavailable, err))
	}
	return item, nil
}

func (c *Client[T, P]) Create(ctx context.Context, item T) (T, error) {
	var zero T

	body, err := json.Marshal(item)
	if err != nil {
		return zero, fmt.Errorf("rest: marshal item: %w", err)
	}

	status, raw, err := c.do(ctx, http.MethodPost, c.collectionURL(), body)
	if err != nil {
		return zero, c.fail(ctx, "Create", err)
	}
	if status == http.StatusConflict {
		return zero, storage.ErrConflict
	}
	if status < 200 || status >= 300 {
		return zero, c.fail(ctx, "Create", statusErr(status, raw))
	}

	var created T
	if err := json.Unmarshal(raw, &created); err != nil {
		return zero, c.fail(ctx, "Create", fmt.Errorf("%w: malformed body: %v", storage.ErrUnavailable, err))
	}
	return created, nil
}

func (c *Client[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T

	body, err := storage.PatchJSON(patch)
	if err != nil {
		return zero, fmt.Errorf("rest: %w", err)
	}

	status, raw, err := c.do(ctx, http.MethodPatch, c.memberURL(id), body)
	if err != nil {
		return zero, c.fail(ctx, "Update", err)
	}
	if status == http.StatusNotFound {
		return zero, storage.ErrNotFound
	}
	if status < 200 || status >= 300 {
		return zero, c.fail(ctx, "Update", statusErr(status, raw))
	}

	var updated T
	if err := json.Unmarshal(raw, &updated); err != nil {
		return zero, c.fail(ctx, "Update", fmt.Errorf("%w: malformed body: %v", storage.ErrUnavailable, err))
	}
	return updated, nil
}

func (c *Client[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	status, raw, err := c.do(ctx, http.MethodDelete, c.memberURL(id), nil)
	if err != nil {
		return false, c.fail(ctx, "Delete", err)
	}
	if status == http.StatusNotFound {
		return false, nil // idempotente: ya no existía
	}
	if status < 200 || status >= 300 {
		return false, c.fail(ctx, "Delete", statusErr(status, raw))
	}
	return true, nil
}

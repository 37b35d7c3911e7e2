package orders_api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/internal/generated/dto"
	retrierconfig "storefront/pkg/retrier"
	"storefront/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0

	maxErrorBody = 64 << 10
)

// Gateway клиент REST API заказов. Повторяются только GET запросы.
type Gateway struct {
	baseURL string
	client  httpClient
	retrier retrier
}

func New(baseURL string, client httpClient) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) GetOrder(ctx context.Context, orderID string) (*dto.Order, error) {
	var res dto.Order
	err := g.call(ctx, "GetOrder", request{
		method: http.MethodGet,
		path:   "/orders/" + url.PathEscape(orderID),
		want:   http.StatusOK,
		out:    &res,
	})
	if err != nil {
		return nil, fmt.Errorf("orders api, get order %s: %w", orderID, err)
	}
	return &res, nil
}

func (g *Gateway) GetOrderActions(ctx context.Context, orderID string) (*dto.OrderActions, error) {
	var res dto.OrderActions
	err := g.call(ctx, "GetOrderActions", request{
		method: http.MethodGet,
		path:   "/orders/" + url.PathEscape(orderID) + "/actions",
		want:   http.StatusOK,
		out:    &res,
	})
	if err != nil {
		return nil, fmt.Errorf("orders api, get order actions %s: %w", orderID, err)
	}
	return &res, nil
}

func (g *Gateway) ListOrders(ctx context.Context, params dto.ListOrdersParams) ([]dto.Order, error) {
	var res dto.OrderList
	err := g.call(ctx, "ListOrders", request{
		method: http.MethodGet,
		path:   "/orders",
		query:  listQuery(params),
		want:   http.StatusOK,
		out:    &res,
	})
	if err != nil {
		return nil, fmt.Errorf("orders api, list orders: %w", err)
	}
	return res.Orders, nil
}

func (g *Gateway) CreateOrder(ctx context.Context, order dto.OrderCreate) (*dto.Order, error) {
	var res dto.Order
	err := g.call(ctx, "CreateOrder", request{
		method: http.MethodPost,
		path:   "/orders",
		body:   order,
		want:   http.StatusCreated,
		out:    &res,
	})
	if err != nil {
		return nil, fmt.Errorf("orders api, create order: %w", err)
	}
	return &res, nil
}

func (g *Gateway) UpdateOrderStatus(ctx context.Context, orderID, status string) (*dto.OrderStatusTransition, error) {
	var res dto.OrderStatusTransition
	err := g.call(ctx, "UpdateOrderStatus", request{
		method: http.MethodPatch,
		path:   "/orders/" + url.PathEscape(orderID) + "/status",
		body:   dto.OrderStatusUpdate{Status: &status},
		want:   http.StatusOK,
		out:    &res,
	})
	if err != nil {
		return nil, fmt.Errorf("orders api, update status %s: %w", orderID, err)
	}
	return &res, nil
}

func (g *Gateway) UpdateOrderPaymentStatus(ctx context.Context, orderID, paymentStatus string) (*dto.OrderPaymentStatusTransition, error) {
	var res dto.OrderPaymentStatusTransition
	err := g.call(ctx, "UpdateOrderPaymentStatus", request{
		method: http.MethodPatch,
		path:   "/orders/" + url.PathEscape(orderID) + "/payment-status",
		body:   dto.OrderPaymentStatusUpdate{PaymentStatus: &paymentStatus},
		want:   http.StatusOK,
		out:    &res,
	})
	if err != nil {
		return nil, fmt.Errorf("orders api, update payment status %s: %w", orderID, err)
	}
	return &res, nil
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	want   int
	out    any
}

func (g *Gateway) call(ctx context.Context, name string, req request) error {
	var payload []byte
	if req.body != nil {
		var err error
		payload, err = json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	send := func(ctx context.Context) error {
		return g.send(ctx, req, payload)
	}

	return g.executeWithMetrics(ctx, name, send, req.method == http.MethodGet)
}

func (g *Gateway) send(ctx context.Context, req request, payload []byte) error {
	target := g.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != req.want {
		return decodeError(resp)
	}

	if req.out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(req.out); err != nil {
		return fmt.Errorf("%w: decode body: %w", ErrUnexpectedResponse, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body dto.Error
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		apiErr.Code = body.Error
		apiErr.Message = body.Message
		return apiErr
	}

	apiErr.Code = dto.ErrorCodeInternal
	apiErr.Message = strings.TrimSpace(string(raw))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func listQuery(params dto.ListOrdersParams) url.Values {
	query := url.Values{}
	if params.Status != nil {
		query.Set("status", string(*params.Status))
	}
	if params.PaymentStatus != nil {
		query.Set("paymentStatus", string(*params.PaymentStatus))
	}
	if params.User != nil {
		query.Set("user", *params.User)
	}
	if params.Limit != nil {
		query.Set("limit", strconv.Itoa(*params.Limit))
	}
	if params.Offset != nil {
		query.Set("offset", strconv.Itoa(*params.Offset))
	}
	return query
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrUnexpectedResponse) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.temporary()
	}
	// сетевые ошибки транспорта
	return true
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error, retry bool) error {
	var attempt uint64
	start := time.Now()

	var err error
	if retry {
		err = g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
			attempt++
			return fn(ctx)
		})
	} else {
		attempt = 1
		err = fn(ctx)
	}

	code := responseCode(err)
	GatewayRequestDuration.WithLabelValues(method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(method, code).Inc()
	}

	return err
}

func responseCode(err error) string {
	if err == nil {
		return "OK"
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return strconv.Itoa(apiErr.StatusCode)
	}
	return "TRANSPORT"
}

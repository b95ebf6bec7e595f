// Пакет aspect4 — SOAP-шлюз к сервису заказов Aspect4 (EA7602RA).
// Реализует ports.Gateway поверх пяти табличных операций бэкенда.
package aspect4

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/nordtex/aspect4-orders/internal/domain"
	"github.com/nordtex/aspect4-orders/internal/ports"
	"github.com/nordtex/aspect4-orders/pkg/metrics"
)

// ErrMissingCredentials — не заданы учётные данные Aspect4.
var ErrMissingCredentials = errors.New("aspect4: username and password must be configured")

// Операции сервиса и имена групповых элементов их ответов.
const (
	opOrderGet        = "orderget"
	opOrderLines      = "orderlinesget"
	opStatusLines     = "staordlinesget"
	opOrderLineSizes  = "ordlinsizeget"
	opStatusLineSizes = "stalinsizeget"

	groupOrders          = "grporder"
	groupOrderLines      = "grpordline"
	groupStatusLines     = "grpstaordline"
	groupOrderLineSizes  = "grpordlinsize"
	groupStatusLineSizes = "grpstalinsize"
)

const defaultTimeout = 30 * time.Second

// Config — расположение и учётные данные сервиса.
type Config struct {
	Endpoint string
	Username string
	Password string
	Timeout  time.Duration
}

// Client — SOAP-клиент Aspect4.
type Client struct {
	endpoint string
	creds    credentials
	httpc    *http.Client
	log      ports.Logger
}

var _ ports.Gateway = (*Client)(nil)

// New — конструктор; без учётных данных клиент не собирается.
func New(cfg Config, log ports.Logger) (*Client, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, ErrMissingCredentials
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: cfg.Endpoint,
		creds:    credentials{User: cfg.Username, Password: cfg.Password},
		httpc:    &http.Client{Timeout: timeout},
		log:      log,
	}, nil
}

// ListOrders — листинг заказов клиента с глубиной searchLimit.
func (c *Client) ListOrders(ctx context.Context, customerNumber string, searchLimit int, orderNumber string) ([]domain.Fields, error) {
	req := []field{
		{name: domain.FieldCustomer, value: customerNumber},
		{name: "limit", value: strconv.Itoa(searchLimit)},
	}
	if orderNumber != "" {
		req = append(req, field{name: "aordrenr", value: orderNumber})
	}
	return c.callRows(ctx, opOrderGet, groupOrders, req)
}

// ListOrderLines — строки заказа.
func (c *Client) ListOrderLines(ctx context.Context, orderNumber int64) ([]domain.Fields, error) {
	return c.callRows(ctx, opOrderLines, groupOrderLines, orderKey(orderNumber))
}

// ListStatusLines — статусные строки.
func (c *Client) ListStatusLines(ctx context.Context, orderNumber int64) ([]domain.Fields, error) {
	return c.callRows(ctx, opStatusLines, groupStatusLines, orderKey(orderNumber))
}

// ListOrderLineSizes — размеры по строкам заказа.
func (c *Client) ListOrderLineSizes(ctx context.Context, orderNumber int64) ([]domain.SizeGroup, error) {
	return c.callGroups(ctx, opOrderLineSizes, groupOrderLineSizes, orderKey(orderNumber))
}

// ListStatusLineSizes — отгруженные размеры по статусным строкам.
func (c *Client) ListStatusLineSizes(ctx context.Context, orderNumber int64) ([]domain.SizeGroup, error) {
	return c.callGroups(ctx, opStatusLineSizes, groupStatusLineSizes, orderKey(orderNumber))
}

func orderKey(orderNumber int64) []field {
	return []field{{name: domain.FieldOrderNumber, value: strconv.FormatInt(orderNumber, 10)}}
}

func (c *Client) callRows(ctx context.Context, op, group string, req []field) ([]domain.Fields, error) {
	nodes, err := c.call(ctx, op, group, req)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.Fields, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, n.fields)
	}
	return rows, nil
}

func (c *Client) callGroups(ctx context.Context, op, group string, req []field) ([]domain.SizeGroup, error) {
	nodes, err := c.call(ctx, op, group, req)
	if err != nil {
		return nil, err
	}
	groups := make([]domain.SizeGroup, 0, len(nodes))
	for _, n := range nodes {
		groups = append(groups, domain.SizeGroup{Fields: n.fields, Sizes: n.sizes})
	}
	return groups, nil
}

// call — один SOAP-вызов: конверт, POST, разбор групповых элементов ответа.
func (c *Client) call(ctx context.Context, op, group string, reqFields []field) ([]rowNode, error) {
	metrics.GatewayRequests.WithLabelValues(op).Inc()

	body := buildEnvelope(op, c.creds, reqFields)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		metrics.GatewayFailures.WithLabelValues(op).Inc()
		return nil, fmt.Errorf("aspect4 %s: build request: %w", op, err)
	}
	httpReq.Header.Set("Content-Type", "text/xml; charset=utf-8")
	httpReq.Header.Set("SOAPAction", op)

	start := time.Now()
	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		metrics.GatewayFailures.WithLabelValues(op).Inc()
		return nil, fmt.Errorf("aspect4 %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.GatewayFailures.WithLabelValues(op).Inc()
		// тело всё равно разбираем: в нём может быть Fault с причиной
		if _, parseErr := parseResponse(resp.Body, group); parseErr != nil {
			return nil, fmt.Errorf("aspect4 %s: http %d: %w", op, resp.StatusCode, parseErr)
		}
		return nil, fmt.Errorf("aspect4 %s: unexpected http status %d", op, resp.StatusCode)
	}

	nodes, err := parseResponse(resp.Body, group)
	if err != nil {
		metrics.GatewayFailures.WithLabelValues(op).Inc()
		return nil, fmt.Errorf("aspect4 %s: %w", op, err)
	}

	c.log.Infof(ctx, "aspect4 %s rows=%d took=%s", op, len(nodes), time.Since(start))
	return nodes, nil
}

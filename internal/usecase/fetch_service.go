package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nordtex/aspect4-orders/internal/domain"
	"github.com/nordtex/aspect4-orders/internal/ports"
	"github.com/nordtex/aspect4-orders/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	// defaultLimit — максимум заказов в выдаче, если лимит не задан.
	defaultLimit = 50

	// statusSearchDepth — глубина листинга при фильтре статуса: фильтрация
	// идёт на нашей стороне уже после листинга, поэтому кандидатов нужно
	// больше, чем limit.
	statusSearchDepth = 1000
)

// FetchService — движок сверки: листинг заказов, четыре зависимых запроса
// на заказ, сборка строк и аккумуляция до лимита.
type FetchService struct {
	gateway ports.Gateway
	log     ports.Logger
	now     func() time.Time
}

var _ ports.OrderFetchService = (*FetchService)(nil)

// NewFetchService — DI-конструктор.
func NewFetchService(gateway ports.Gateway, log ports.Logger) *FetchService {
	return &FetchService{gateway: gateway, log: log, now: time.Now}
}

// FetchOrders — одна выборка: разрешение дат и лимита, листинг, затем
// последовательная сверка заказов. Ошибка любого зависимого запроса
// прерывает всю выборку — частичных результатов не бывает.
func (s *FetchService) FetchOrders(ctx context.Context, p domain.FetchParams) (*domain.FetchResult, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	filter, err := resolveDateFilter(p, s.now())
	if err != nil {
		return nil, err
	}

	searchLimit := limit
	if p.OrderStatus != "" && searchLimit < statusSearchDepth {
		searchLimit = statusSearchDepth
	}

	start := time.Now()
	orderRows, err := s.gateway.ListOrders(ctx, p.CustomerNumber, searchLimit, p.OrderNumber)
	if err != nil {
		s.log.Errorf(ctx, "list orders failed customer=%s err=%v", p.CustomerNumber, err)
		return nil, fmt.Errorf("list orders: %w", err)
	}
	metrics.OrdersListed.Add(float64(len(orderRows)))

	acc := newResultAccumulator(filter, len(orderRows), limit)
	for _, row := range orderRows {
		orderStatus := row.Text(domain.FieldStatus)
		orderDate64, _ := row.Int64(domain.FieldOrderDate)
		orderDate := int(orderDate64)

		if !statusAccepts(p.OrderStatus, orderStatus) {
			continue
		}
		if !dateAccepts(filter, orderDate) {
			continue
		}

		orderNumber, _ := row.Int64(domain.FieldOrderNumber)
		src, err := s.fetchOrderSources(ctx, orderNumber)
		if err != nil {
			s.log.Errorf(ctx, "dependent fetch failed order=%d err=%v", orderNumber, err)
			return nil, fmt.Errorf("order %d: %w", orderNumber, err)
		}

		lines := assembleLines(src)
		if len(lines) == 0 {
			acc.skipEmpty()
			continue
		}

		acc.keep(domain.OrderRecord{
			OrderNumber:      orderNumber,
			OrderDate:        orderDate,
			OrderStatus:      orderStatus,
			WithinDateFilter: true,
			OrderLines:       lines,
		})
		if acc.full() {
			break
		}
	}

	result := acc.snapshot()
	metrics.OrdersReturned.Add(float64(len(result.Orders)))
	s.log.Infof(ctx, "orders fetched customer=%s listed=%d returned=%d without_lines=%d took=%s",
		p.CustomerNumber, result.TotalOrdersFetched, len(result.Orders), result.OrdersWithoutLines, time.Since(start))
	return result, nil
}

// fetchOrderSources — четыре независимых запроса одного заказа уходят
// параллельно и соединяются до аккумуляции: наружу заказ попадает только
// целиком.
func (s *FetchService) fetchOrderSources(ctx context.Context, orderNumber int64) (lineSources, error) {
	var src lineSources

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.gateway.ListOrderLines(gctx, orderNumber)
		src.orderLines = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.gateway.ListStatusLines(gctx, orderNumber)
		src.statusLines = rows
		return err
	})
	g.Go(func() error {
		groups, err := s.gateway.ListOrderLineSizes(gctx, orderNumber)
		src.orderLineSizes = groups
		return err
	})
	g.Go(func() error {
		groups, err := s.gateway.ListStatusLineSizes(gctx, orderNumber)
		src.statusLineSizes = groups
		return err
	})

	if err := g.Wait(); err != nil {
		return lineSources{}, err
	}
	return src, nil
}

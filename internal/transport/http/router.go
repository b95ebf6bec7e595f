package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nordtex/aspect4-orders/internal/domain"
	"github.com/nordtex/aspect4-orders/internal/ports"
	"github.com/nordtex/aspect4-orders/internal/usecase"
	"github.com/nordtex/aspect4-orders/pkg/httpx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Handler struct {
	service ports.OrderFetchService
	log     ports.Logger
	timeout time.Duration // бюджет одного запроса; 0 — без ограничения
}

func NewHandler(service ports.OrderFetchService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/orders", h.getOrders)

	return r
}

// getOrders — GET /orders: разбор параметров, проверка их совместимости и
// запуск выборки. Сервис наружу отдаёт либо полный результат, либо ошибку.
func (h *Handler) getOrders(c *gin.Context) {
	customerNumber := c.Query("customer_number")
	if customerNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_number is required"})
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return
		}
		days = v
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if (startDate != "" || endDate != "") && days != 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "cannot specify both date range (start_date/end_date) and days parameter",
		})
		return
	}

	params := domain.FetchParams{
		CustomerNumber: customerNumber,
		OrderNumber:    c.Query("order_number"),
		Days:           days,
		StartDate:      startDate,
		EndDate:        endDate,
		Limit:          httpx.QueryInt(c, "limit", 50),
		OrderStatus:    c.Query("order_status"),
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result, err := h.service.FetchOrders(ctx, params)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf(c.Request.Context(), "FetchOrders failed customer=%s err=%v", customerNumber, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error while communicating with Aspect4",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// GatewayRequests — SOAP-запросы к Aspect4 по операциям.
	GatewayRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aspect4_gateway_requests_total",
			Help: "Number of SOAP requests issued to Aspect4",
		},
		[]string{"operation"},
	)
	// GatewayFailures — неудачные SOAP-запросы по операциям.
	GatewayFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aspect4_gateway_failures_total",
			Help: "Number of failed SOAP requests",
		},
		[]string{"operation"},
	)
)

var (
	// OrdersListed — заказы, возвращённые листингом (до фильтров).
	OrdersListed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_listed_total",
			Help: "Orders returned by the backend listing call",
		},
	)
	// OrdersReturned — заказы, попавшие в итоговую выдачу.
	OrdersReturned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_returned_total",
			Help: "Orders included in fetch results",
		},
	)
)

// MustRegister — регистрация коллекторов; повторная регистрация не считается
// ошибкой, чтобы вызов из тестов и bootstrap не конфликтовал.
func MustRegister() {
	collectors := []prometheus.Collector{GatewayRequests, GatewayFailures, OrdersListed, OrdersReturned}
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			are := prometheus.AlreadyRegisteredError{}
			if errors.As(err, &are) {
				continue
			}
			panic(err)
		}
	}
}

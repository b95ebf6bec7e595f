package metrics_test

import (
	"testing"

	"github.com/nordtex/aspect4-orders/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestGatewayCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeReq := testutil.ToFloat64(metrics.GatewayRequests.WithLabelValues("orderget"))
	beforeFail := testutil.ToFloat64(metrics.GatewayFailures.WithLabelValues("orderget"))

	metrics.GatewayRequests.WithLabelValues("orderget").Inc()
	metrics.GatewayFailures.WithLabelValues("orderget").Inc()

	if got := testutil.ToFloat64(metrics.GatewayRequests.WithLabelValues("orderget")); got != beforeReq+1 {
		t.Fatalf("GatewayRequests: got=%v want=%v", got, beforeReq+1)
	}
	if got := testutil.ToFloat64(metrics.GatewayFailures.WithLabelValues("orderget")); got != beforeFail+1 {
		t.Fatalf("GatewayFailures: got=%v want=%v", got, beforeFail+1)
	}
}

func TestOrderCounters_Add(t *testing.T) {
	metrics.MustRegister()

	beforeListed := testutil.ToFloat64(metrics.OrdersListed)
	beforeReturned := testutil.ToFloat64(metrics.OrdersReturned)

	metrics.OrdersListed.Add(7)
	metrics.OrdersReturned.Add(3)

	if got := testutil.ToFloat64(metrics.OrdersListed); got != beforeListed+7 {
		t.Fatalf("OrdersListed: got=%v want=%v", got, beforeListed+7)
	}
	if got := testutil.ToFloat64(metrics.OrdersReturned); got != beforeReturned+3 {
		t.Fatalf("OrdersReturned: got=%v want=%v", got, beforeReturned+3)
	}
}

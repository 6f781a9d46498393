package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CartMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_mutations_total",
		Help: "Cart mutations by operation (add, update, remove, clear).",
	}, []string{"op"})

	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_placed_total",
		Help: "Orders successfully created at checkout.",
	})

	CheckoutRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_checkout_rejections_total",
		Help: "Checkout submissions rejected by validation.",
	})

	PersistFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_persist_failures_total",
		Help: "Storage writes that failed; in-memory state stayed authoritative.",
	})
)

package rpc

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tarancss/adptools/lib/block/types"
)

var (
	rpcCalls = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals // prometheus collector
		Name: "adptools_rpc_calls_total",
		Help: "Upstream JSON-RPC calls by chain, method and outcome.",
	}, []string{"chain", "method", "outcome"})

	rpcDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals // prometheus collector
		Name:    "adptools_rpc_duration_seconds",
		Help:    "Upstream JSON-RPC call latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"chain", "method"})
)

func observe(chain types.Chain, method string, err error, d time.Duration) {
	var rerr *Error

	outcome := "ok"

	switch {
	case errors.As(err, &rerr):
		outcome = "rpc_error"
	case err != nil:
		outcome = "transport_error"
	}

	rpcCalls.WithLabelValues(chain.String(), method, outcome).Inc()
	rpcDuration.WithLabelValues(chain.String(), method).Observe(d.Seconds())
}

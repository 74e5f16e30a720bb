package tool

import (
	"encoding/json"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tarancss/adptools/lib/store"
)

var toolCalls = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals // prometheus collector
	Name: "adptools_tool_calls_total",
	Help: "Tool invocations by tool and outcome.",
}, []string{"tool", "outcome"})

// record counts the invocation and, when configured, publishes it to the message broker and saves it to the audit
// log. Failures are logged and never change the response.
func (d *Dispatcher) record(inv *invocation, res Response, elapsed time.Duration) {
	name, outcome := inv.tool, "ok"
	if _, ok := registry[name]; !ok {
		name = "unknown"
	}

	if res.IsError {
		outcome = "error"
	}

	toolCalls.WithLabelValues(name, outcome).Inc()

	if d.mb == nil && d.db == nil {
		return
	}

	c := store.Call{
		Tool:     inv.tool,
		Args:     "{}",
		IsError:  res.IsError,
		Upstream: inv.upstream,
		Skipped:  inv.skipped,
		Millis:   elapsed.Milliseconds(),
		TS:       time.Now().UTC(),
	}

	if inv.chain != 0 {
		c.Chain = inv.chain.String()
	}

	if res.IsError {
		c.Error = res.Text()
	}

	if len(inv.args) > 0 {
		if args, err := json.Marshal(inv.args); err == nil {
			c.Args = string(args)
		}
	}

	if d.mb != nil {
		if err := d.mb.SendCall(c); err != nil {
			log.Printf("[%s] Error publishing tool call event:%v", c.Tool, err)
		}
	}

	if d.db != nil {
		if err := d.db.SaveCall(c); err != nil {
			log.Printf("[%s] Error saving tool call:%v", c.Tool, err)
		}
	}
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

// Natural-language query Prometheus metrics.
var (
	QueryParsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stringstore",
			Name:      "nl_query_parses_total",
			Help:      "Total natural language query parse attempts",
		},
		[]string{"result"}, // "parsed" / "unparseable"
	)

	RecordsInsertedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stringstore",
			Name:      "records_inserted_total",
			Help:      "Total records inserted",
		},
	)
)

var queryMetricsRegistered bool

// RegisterQueryMetrics registers the domain metrics. Must be called once from main.
func RegisterQueryMetrics() {
	if queryMetricsRegistered {
		return
	}
	prometheus.MustRegister(QueryParsesTotal)
	prometheus.MustRegister(RecordsInsertedTotal)
	queryMetricsRegistered = true
}

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib"
)

var (
	UpstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "biobrick",
		Name:      "upstream_requests_total",
		Help:      "Requests made to upstream services, by service and status code.",
	}, []string{"service", "code"})

	UpstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "biobrick",
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of upstream requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service"})
)

// Register adds the collectors to reg. Call once per registry.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{UpstreamRequests, UpstreamDuration} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// InstrumentedClient records a count and a latency observation for every request made through it.
// Transport failures are counted with code "error".
type InstrumentedClient struct {
	Service string
	Client  lib.HttpClient
}

func Instrument(service string, client lib.HttpClient) lib.HttpClient {
	return &InstrumentedClient{Service: service, Client: client}
}

func (c *InstrumentedClient) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.Client.Do(req)
	UpstreamDuration.WithLabelValues(c.Service).Observe(time.Since(start).Seconds())

	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	UpstreamRequests.WithLabelValues(c.Service, code).Inc()
	return resp, err
}

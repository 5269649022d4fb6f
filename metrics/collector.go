// ABOUTME: This file implements metrics collection for requests and background jobs
// ABOUTME: Provides aggregation and JSON/Prometheus export over a side HTTP server
package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"news-hub/config"
)

// DomainMetrics tracks performance metrics for one logical domain, e.g.
// an HTTP route group or a background job.
type DomainMetrics struct {
	Domain            string        `json:"domain"`
	TotalRequests     int64         `json:"total_requests"`
	SuccessCount      int64         `json:"success_count"`
	FailureCount      int64         `json:"failure_count"`
	SuccessRate       float64       `json:"success_rate"`
	AvgResponseTime   time.Duration `json:"avg_response_time_ms"`
	MinResponseTime   time.Duration `json:"min_response_time_ms"`
	MaxResponseTime   time.Duration `json:"max_response_time_ms"`
	LastRequestTime   time.Time     `json:"last_request_time"`
	FirstRequestTime  time.Time     `json:"first_request_time"`
	TotalResponseTime time.Duration `json:"-"`
}

// AggregateMetrics provides system-wide statistics.
type AggregateMetrics struct {
	TotalRequests   int64         `json:"total_requests"`
	SuccessCount    int64         `json:"success_count"`
	FailureCount    int64         `json:"failure_count"`
	SuccessRate     float64       `json:"success_rate"`
	AvgResponseTime time.Duration `json:"avg_response_time_ms"`
	ActiveDomains   int           `json:"active_domains"`
	CollectionTime  time.Time     `json:"collection_time"`
}

// ExportData contains all metrics for export.
type ExportData struct {
	Aggregate     *AggregateMetrics         `json:"aggregate"`
	DomainMetrics map[string]*DomainMetrics `json:"domains"`
	ExportTime    time.Time                 `json:"export_time"`
	ServiceName   string                    `json:"service_name"`
}

// Collector manages metric collection and aggregation.
type Collector struct {
	enabled bool
	cfg     config.MetricsConfig
	logger  *slog.Logger

	metrics map[string]*DomainMetrics
	mu      sync.RWMutex

	server   *http.Server
	serverMu sync.Mutex
}

// NewCollector creates a new metrics collector.
func NewCollector(cfg config.MetricsConfig, logger *slog.Logger) (*Collector, error) {
	if cfg.Enabled {
		if cfg.Port < 0 || cfg.Port > 65535 {
			return nil, errors.New("invalid metrics port")
		}
	}

	if cfg.Path == "" {
		cfg.Path = "/metrics"
	}

	collector := &Collector{
		enabled: cfg.Enabled,
		cfg:     cfg,
		logger:  logger,
		metrics: make(map[string]*DomainMetrics),
	}

	logger.Info("metrics collector initialized",
		"enabled", cfg.Enabled,
		"port", cfg.Port,
		"path", cfg.Path)

	return collector, nil
}

// RecordRequest records one request or job run for a domain.
func (c *Collector) RecordRequest(domain string, responseTime time.Duration, success bool) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()

	domainMetrics, exists := c.metrics[domain]
	if !exists {
		domainMetrics = &DomainMetrics{
			Domain:           domain,
			FirstRequestTime: now,
			MinResponseTime:  responseTime,
			MaxResponseTime:  responseTime,
		}
		c.metrics[domain] = domainMetrics
	}

	domainMetrics.TotalRequests++
	domainMetrics.LastRequestTime = now
	domainMetrics.TotalResponseTime += responseTime

	if success {
		domainMetrics.SuccessCount++
	} else {
		domainMetrics.FailureCount++
	}

	if responseTime < domainMetrics.MinResponseTime {
		domainMetrics.MinResponseTime = responseTime
	}
	if responseTime > domainMetrics.MaxResponseTime {
		domainMetrics.MaxResponseTime = responseTime
	}

	if domainMetrics.TotalRequests > 0 {
		domainMetrics.SuccessRate = float64(domainMetrics.SuccessCount) / float64(domainMetrics.TotalRequests)
		domainMetrics.AvgResponseTime = time.Duration(domainMetrics.TotalResponseTime.Nanoseconds() / domainMetrics.TotalRequests)
	}
}

// GetDomainMetrics returns a copy of one domain's metrics.
func (c *Collector) GetDomainMetrics(domain string) *DomainMetrics {
	if !c.enabled {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	metrics, exists := c.metrics[domain]
	if !exists {
		return nil
	}

	copied := *metrics
	return &copied
}

// GetAggregateMetrics returns system-wide aggregate metrics.
func (c *Collector) GetAggregateMetrics() *AggregateMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.aggregateLocked()
}

// aggregateLocked assumes the read lock is held.
func (c *Collector) aggregateLocked() *AggregateMetrics {
	aggregate := &AggregateMetrics{
		CollectionTime: time.Now(),
		ActiveDomains:  len(c.metrics),
	}

	var totalResponseTime time.Duration

	for _, domainMetrics := range c.metrics {
		aggregate.TotalRequests += domainMetrics.TotalRequests
		aggregate.SuccessCount += domainMetrics.SuccessCount
		aggregate.FailureCount += domainMetrics.FailureCount
		totalResponseTime += domainMetrics.TotalResponseTime
	}

	if aggregate.TotalRequests > 0 {
		aggregate.SuccessRate = float64(aggregate.SuccessCount) / float64(aggregate.TotalRequests)
		aggregate.AvgResponseTime = time.Duration(totalResponseTime.Nanoseconds() / aggregate.TotalRequests)
	}

	return aggregate
}

// ExportJSON exports all metrics in JSON format.
func (c *Collector) ExportJSON() ([]byte, error) {
	if !c.enabled {
		return []byte("{}"), nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	exportData := &ExportData{
		Aggregate:     c.aggregateLocked(),
		DomainMetrics: make(map[string]*DomainMetrics),
		ExportTime:    time.Now(),
		ServiceName:   "news-hub",
	}

	for domain, metrics := range c.metrics {
		copied := *metrics
		exportData.DomainMetrics[domain] = &copied
	}

	return json.MarshalIndent(exportData, "", "  ")
}

// ExportPrometheus exports metrics in Prometheus text format.
func (c *Collector) ExportPrometheus() string {
	if !c.enabled {
		return ""
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var builder strings.Builder

	builder.WriteString("# HELP newshub_requests_total Total number of requests processed\n")
	builder.WriteString("# TYPE newshub_requests_total counter\n")

	builder.WriteString("# HELP newshub_requests_success_total Total number of successful requests\n")
	builder.WriteString("# TYPE newshub_requests_success_total counter\n")

	builder.WriteString("# HELP newshub_requests_failure_total Total number of failed requests\n")
	builder.WriteString("# TYPE newshub_requests_failure_total counter\n")

	builder.WriteString("# HELP newshub_response_time_seconds Average response time in seconds\n")
	builder.WriteString("# TYPE newshub_response_time_seconds gauge\n")

	builder.WriteString("# HELP newshub_success_rate Ratio of successful requests\n")
	builder.WriteString("# TYPE newshub_success_rate gauge\n")

	domains := make([]string, 0, len(c.metrics))
	for domain := range c.metrics {
		domains = append(domains, domain)
	}
	sort.Strings(domains)

	for _, domain := range domains {
		metrics := c.metrics[domain]

		builder.WriteString(fmt.Sprintf("newshub_requests_total{domain=%q} %d\n",
			domain, metrics.TotalRequests))
		builder.WriteString(fmt.Sprintf("newshub_requests_success_total{domain=%q} %d\n",
			domain, metrics.SuccessCount))
		builder.WriteString(fmt.Sprintf("newshub_requests_failure_total{domain=%q} %d\n",
			domain, metrics.FailureCount))
		builder.WriteString(fmt.Sprintf("newshub_response_time_seconds{domain=%q} %.6f\n",
			domain, metrics.AvgResponseTime.Seconds()))
		builder.WriteString(fmt.Sprintf("newshub_success_rate{domain=%q} %.4f\n",
			domain, metrics.SuccessRate))
	}

	aggregate := c.aggregateLocked()
	builder.WriteString(fmt.Sprintf("newshub_requests_total{domain=\"_aggregate\"} %d\n",
		aggregate.TotalRequests))
	builder.WriteString(fmt.Sprintf("newshub_requests_success_total{domain=\"_aggregate\"} %d\n",
		aggregate.SuccessCount))
	builder.WriteString(fmt.Sprintf("newshub_requests_failure_total{domain=\"_aggregate\"} %d\n",
		aggregate.FailureCount))
	builder.WriteString(fmt.Sprintf("newshub_response_time_seconds{domain=\"_aggregate\"} %.6f\n",
		aggregate.AvgResponseTime.Seconds()))
	builder.WriteString(fmt.Sprintf("newshub_success_rate{domain=\"_aggregate\"} %.4f\n",
		aggregate.SuccessRate))

	return builder.String()
}

// Reset clears all collected metrics.
func (c *Collector) Reset() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.metrics = make(map[string]*DomainMetrics)
}

// Start starts the side HTTP metrics server.
func (c *Collector) Start(_ context.Context) error {
	if !c.enabled {
		return nil
	}

	c.serverMu.Lock()
	defer c.serverMu.Unlock()

	if c.server != nil {
		return errors.New("metrics server already running")
	}

	mux := http.NewServeMux()

	mux.HandleFunc(c.cfg.Path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		jsonData, err := c.ExportJSON()
		if err != nil {
			c.logger.Error("failed to export JSON metrics", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		_, _ = w.Write(jsonData)
	})

	mux.HandleFunc(c.cfg.Path+"/prometheus", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(c.ExportPrometheus()))
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy","service":"news-hub-metrics"}`))
	})

	c.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", c.cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: c.cfg.ReadHeaderTimeout,
		ReadTimeout:       c.cfg.ReadTimeout,
		WriteTimeout:      c.cfg.WriteTimeout,
		IdleTimeout:       c.cfg.IdleTimeout,
	}

	go func() {
		c.logger.Info("starting metrics server", "port", c.cfg.Port, "path", c.cfg.Path)

		if err := c.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.logger.Error("metrics server failed", "error", err)
		}
	}()

	return nil
}

// Stop stops the HTTP metrics server.
func (c *Collector) Stop(ctx context.Context) error {
	if !c.enabled {
		return nil
	}

	c.serverMu.Lock()
	defer c.serverMu.Unlock()

	if c.server == nil {
		return nil
	}

	err := c.server.Shutdown(ctx)
	c.server = nil

	if err != nil {
		c.logger.Error("error stopping metrics server", "error", err)
		return err
	}

	c.logger.Info("metrics server stopped")
	return nil
}

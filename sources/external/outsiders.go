package external

import (
	"autotable/sources/expansion"
	"autotable/sources/platform"
	"autotable/sources/tracing"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Outsiders struct {
	log      *tracing.Logger
	config   *OutsidersConfig
	expander *expansion.Expander
	ss       *http.Server
	sms      *http.Server
	as       *http.Server
}

func NewOutsiders(log *tracing.Logger, config *OutsidersConfig, expander *expansion.Expander) *Outsiders {
	systemRegistry := prometheus.NewRegistry()

	systemRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)

	x := &Outsiders{
		log:      log,
		config:   config,
		expander: expander,
	}

	x.ss = &http.Server{
		Addr:    fmt.Sprintf(":%d", config.StartupPort),
		Handler: x.startupMux(),
	}
	x.sms = &http.Server{
		Addr: fmt.Sprintf(":%d", config.SystemMetricsPort),
		Handler: platform.Curry(http.NewServeMux, func(m *http.ServeMux) {
			m.Handle("/metrics", promhttp.HandlerFor(systemRegistry, promhttp.HandlerOpts{}))
		}),
	}
	x.as = &http.Server{
		Addr: fmt.Sprintf(":%d", config.ApplicationMetricsPort),
		Handler: platform.Curry(http.NewServeMux, func(m *http.ServeMux) {
			m.Handle("/metrics", promhttp.Handler())
		}),
	}

	return x
}

func (x *Outsiders) startupMux() *http.ServeMux {
	return platform.Curry(http.NewServeMux, func(m *http.ServeMux) {
		m.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
			startuphandler(x.log, w, r)
		})
		m.HandleFunc("GET /expand", x.expandhandler)
	})
}

func (x *Outsiders) startup() {
	x.log.I("Startup server is starting", tracing.OutsiderKind, "startup", "port", x.config.StartupPort)

	if err := x.ss.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		x.log.F("Failed to start startup server", tracing.OutsiderKind, "startup", tracing.InnerError, err)
	}
}

func (x *Outsiders) systemMetrics() {
	x.log.I("System metrics server is starting", tracing.OutsiderKind, "system_metrics", "port", x.config.SystemMetricsPort)

	if err := x.sms.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		x.log.F("Failed to start system metrics server", tracing.OutsiderKind, "system_metrics", tracing.InnerError, err)
	}
}

func (x *Outsiders) applicationMetrics() {
	x.log.I("Application metrics server is starting", tracing.OutsiderKind, "application_metrics", "port", x.config.ApplicationMetricsPort)

	if err := x.as.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		x.log.F("Failed to start application metrics server", tracing.OutsiderKind, "application_metrics", tracing.InnerError, err)
	}
}

// expandhandler serves GET /expand?title=1-3&title=5. Every title is expanded
// independently; per-title failures are reported inline with status 200.
func (x *Outsiders) expandhandler(w http.ResponseWriter, r *http.Request) {
	log := x.log.With(tracing.RequestId, uuid.NewString())

	raws := r.URL.Query()["title"]
	if len(raws) == 0 {
		log.W("Expand request without titles", "remote", r.RemoteAddr)
		writeJSON(log, w, http.StatusBadRequest, map[string]string{"error": "at least one title query parameter is required"})
		return
	}

	log.D("Expand request received", tracing.TitlesCount, len(raws), "remote", r.RemoteAddr)
	outcomes := x.expander.ExpandAll(raws)

	writeJSON(log, w, http.StatusOK, map[string]any{"results": expansion.NewRecords(outcomes)})
}

func startuphandler(log *tracing.Logger, w http.ResponseWriter, r *http.Request) {
	log.D("Outsider service got a ping", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)

	writeJSON(log, w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "autotable",
		"version": platform.GetAppVersion(),
		"uptime":  platform.GetAppUptime().String(),
	})
}

func writeJSON(log *tracing.Logger, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.E("Failed to write response", tracing.InnerError, err)
	}
}

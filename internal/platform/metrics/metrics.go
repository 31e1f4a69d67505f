package metrics

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hrdashboard"

// Metrics はダッシュボード・ブックマーク・gRPC のメトリクスをまとめたものです。
// dashboard.Recorder と bookmark.Recorder の両方を満たします。
type Metrics struct {
	registry *prometheus.Registry

	loadsTotal      *prometheus.CounterVec
	employeesLoaded prometheus.Gauge
	promotionsTotal *prometheus.CounterVec
	bookmarkActions *prometheus.CounterVec
	persistTotal    *prometheus.CounterVec
	rpcTotal        *prometheus.CounterVec
	rpcLatency      *prometheus.HistogramVec
}

// New は専用のレジストリにコレクタを登録して Metrics を生成します。
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		loadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "directory_loads_total",
			Help:      "Total number of employee directory loads.",
		}, []string{"result"}),
		employeesLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "employees_loaded",
			Help:      "Number of employees held by the dashboard.",
		}),
		promotionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "promotions_total",
			Help:      "Total number of promote requests.",
		}, []string{"result"}),
		bookmarkActions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookmark_actions_total",
			Help:      "Total number of bookmark additions and removals.",
		}, []string{"action"}),
		persistTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookmark_persist_total",
			Help:      "Total number of bookmark state writes.",
		}, []string{"result"}),
		rpcTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grpc_requests_total",
			Help:      "Total number of handled gRPC requests.",
		}, []string{"method", "code"}),
		rpcLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grpc_request_duration_seconds",
			Help:      "Latency distribution for gRPC requests.",
			Buckets: []float64{
				0.0005, 0.001, 0.005,
				0.01, 0.05, 0.1,
				0.5, 1, 5,
			},
		}, []string{"method"}),
	}
}

// Registry はメトリクスのレジストリを返します。
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveLoad は社員一覧の読み込み結果を記録します。
func (m *Metrics) ObserveLoad(err error, count int) {
	if err != nil {
		m.loadsTotal.WithLabelValues("error").Inc()
		return
	}
	m.loadsTotal.WithLabelValues("ok").Inc()
	m.employeesLoaded.Set(float64(count))
}

// ObservePromotion は昇格操作の結果を記録します。
func (m *Metrics) ObservePromotion(promoted bool) {
	if promoted {
		m.promotionsTotal.WithLabelValues("promoted").Inc()
		return
	}
	m.promotionsTotal.WithLabelValues("noop").Inc()
}

// ObserveBookmark はブックマークの追加・削除を記録します。
func (m *Metrics) ObserveBookmark(action string) {
	m.bookmarkActions.WithLabelValues(action).Inc()
}

// ObservePersist はブックマーク状態の保存結果を記録します。
func (m *Metrics) ObservePersist(err error) {
	if err != nil {
		m.persistTotal.WithLabelValues("error").Inc()
		return
	}
	m.persistTotal.WithLabelValues("ok").Inc()
}

// ObserveRPC は gRPC リクエストの結果と所要時間を記録します。
func (m *Metrics) ObserveRPC(method, code string, elapsed time.Duration) {
	m.rpcTotal.WithLabelValues(method, code).Inc()
	m.rpcLatency.WithLabelValues(method).Observe(elapsed.Seconds())
}

// Handler は path で metrics を公開する HTTP ハンドラを返します。
func (m *Metrics) Handler(path string) http.Handler {
	if path == "" {
		path = "/metrics"
	}
	r := mux.NewRouter()
	r.Handle(path, promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	return r
}

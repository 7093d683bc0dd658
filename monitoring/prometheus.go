package monitoring

import (
	"net/http"

	"walletbot/logx"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type SignRejectedReason string

var (
	SignNoWallet      SignRejectedReason = "no_wallet"
	SignKeyDecode     SignRejectedReason = "key_decode"
	SignStorage       SignRejectedReason = "storage"
	SignRejectedOther SignRejectedReason = "other"
)

type botPromMetrics struct {
	botUpUnixSeconds  prometheus.Gauge
	walletCount       *prometheus.CounterVec
	signedTxCount     *prometheus.CounterVec
	rejectedSignCount *prometheus.CounterVec
	activeDialogs     prometheus.Gauge
	panicCount        prometheus.Counter
}

func newBotPromMetrics() *botPromMetrics {
	return &botPromMetrics{
		botUpUnixSeconds: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "walletbot_up_timestamp_unix_seconds",
				Help: "Unix timestamp of bot start",
			},
		),
		walletCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletbot_wallet_created_count",
				Help: "The total number of wallets created",
			},
			[]string{"scheme"},
		),
		signedTxCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletbot_signed_tx_count",
				Help: "The total number of transactions signed",
			},
			[]string{"scheme"},
		),
		rejectedSignCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletbot_rejected_sign_count",
				Help: "The total number of rejected signing attempts",
			},
			[]string{"reason"},
		),
		activeDialogs: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "walletbot_active_dialogs",
				Help: "Number of conversations currently mid-flow",
			},
		),
		panicCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "walletbot_panic_count",
				Help: "The total number of recovered panics",
			},
		),
	}
}

var botMetrics *botPromMetrics

// InitMetrics initializes metrics but does not expose them yet
func InitMetrics() {
	botMetrics = newBotPromMetrics()
	botMetrics.botUpUnixSeconds.SetToCurrentTime()
}

func RegisterMetrics(mux *http.ServeMux) {
	logx.Info("MONITORING", "Registering prometheus metrics")
	mux.Handle("/metrics", promhttp.Handler())
}

func IncreaseWalletCount(scheme string) {
	if botMetrics == nil {
		return
	}
	botMetrics.walletCount.With(prometheus.Labels{"scheme": scheme}).Inc()
}

func IncreaseSignedTxCount(scheme string) {
	if botMetrics == nil {
		return
	}
	botMetrics.signedTxCount.With(prometheus.Labels{"scheme": scheme}).Inc()
}

func RecordRejectedSign(reason SignRejectedReason) {
	if botMetrics == nil {
		return
	}
	botMetrics.rejectedSignCount.With(prometheus.Labels{"reason": string(reason)}).Inc()
}

func SetActiveDialogs(n int) {
	if botMetrics == nil {
		return
	}
	botMetrics.activeDialogs.Set(float64(n))
}

func IncreasePanicCount() {
	if botMetrics == nil {
		return
	}
	botMetrics.panicCount.Inc()
}

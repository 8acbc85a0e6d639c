// Package metrics expone los contadores Prometheus de la aplicación.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	loginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consola_logins_total",
			Help: "Verificaciones OTP por resultado (ok, invalid, expired, mismatch, unverified).",
		},
		[]string{"result"},
	)

	otpRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "consola_otp_requests_total",
		Help: "Códigos OTP emitidos.",
	})

	permissionDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consola_permission_decisions_total",
			Help: "Decisiones del resolver de permisos por módulo y resultado (allow, deny).",
		},
		[]string{"module", "decision"},
	)
)

func init() {
	prometheus.MustRegister(loginsTotal, otpRequestsTotal, permissionDecisionsTotal)
}

// ObserveLogin registra el resultado de una verificación OTP.
func ObserveLogin(result string) { loginsTotal.WithLabelValues(result).Inc() }

// ObserveOTPRequest registra la emisión de un código.
func ObserveOTPRequest() { otpRequestsTotal.Inc() }

// ObservePermissionDecision registra una decisión allow/deny del resolver.
func ObservePermissionDecision(module string, allowed bool) {
	decision := "deny"
	if allowed {
		decision = "allow"
	}
	permissionDecisionsTotal.WithLabelValues(module, decision).Inc()
}

// Handler devuelve el handler HTTP de /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

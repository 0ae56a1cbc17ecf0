// Package metrics holds the Prometheus collectors of the bot.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "rosterbot"

// Registration outcomes
const (
	RegistrationCreated   = "created"
	RegistrationDuplicate = "duplicate"
	RegistrationFailed    = "failed"
	RegistrationNoEvent   = "no_event"
)

// Metrics groups the collectors shared by the transport and the service.
type Metrics struct {
	Registry      *prometheus.Registry
	Commands      *prometheus.CounterVec
	Registrations *prometheus.CounterVec
	StoreErrors   *prometheus.CounterVec
	Unauthorized  prometheus.Counter
}

// New creates the collectors on a fresh registry, together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands dispatched, by alias.",
		}, []string{"alias"}),
		Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Attendee registration attempts, by outcome.",
		}, []string{"result"}),
		StoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Failed store operations, by operation.",
		}, []string{"operation"}),
		Unauthorized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unauthorized_messages_total",
			Help:      "Commands ignored because the chat is not registered.",
		}),
	}

	reg.MustRegister(
		m.Commands,
		m.Registrations,
		m.StoreErrors,
		m.Unauthorized,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

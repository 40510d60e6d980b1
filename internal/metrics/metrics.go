package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sei_market"

var (
	// EventsHandled counts dispatched protocol events by outcome
	EventsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_handled_total",
		Help:      "Protocol events dispatched to a handler, by protocol, action and outcome.",
	}, []string{"protocol", "action", "outcome"})

	// UnknownActions counts events whose action is not part of the protocol.
	// The action itself is only logged since any contract can emit one.
	UnknownActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unknown_actions_total",
		Help:      "Events ignored because their action is not recognized.",
	}, []string{"protocol"})

	// MessagesReceived counts raw subscription messages
	MessagesReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_received_total",
		Help:      "Raw websocket messages received per protocol stream.",
	}, []string{"protocol"})

	// Reconnects counts subscription sessions that ended and were retried
	Reconnects = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stream_reconnects_total",
		Help:      "Subscription sessions that ended with an error and were restarted.",
	}, []string{"protocol"})

	// TraceWriteFailures counts tracing records that could not be stored
	TraceWriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trace_write_failures_total",
		Help:      "Tracing records that failed to persist.",
	}, []string{"protocol"})
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	// UnrecognizedAction is the action label shared by all actions outside a protocol
	UnrecognizedAction = "unrecognized"
)

// Outcome returns the outcome label for a handler result
func Outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}

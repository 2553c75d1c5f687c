// Package metrics defines the custom Prometheus metrics for the jobtrackr
// API. It is the single source of truth for metric names, labels, and help
// strings. Request-level HTTP metrics come from the echoprometheus
// middleware; the metrics here cover domain events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobtrackr"

// AuthAttemptsTotal counts login and registration attempts.
// Labels:
//   - operation: "login" or "register"
//   - result: "ok" or "rejected"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login/registration attempts by outcome.",
	},
	[]string{"operation", "result"},
)

// AuthRejectionsTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "missing_token", "invalid_token", "session_revoked", "wrong_role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or role gating.",
	},
	[]string{"reason"},
)

// SessionsRevokedTotal counts explicit logouts.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of sessions revoked via logout.",
	},
)

// ResumeUploadDuration measures the end-to-end resume upload pipeline:
// object store write, text extraction and AI feedback.
var ResumeUploadDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "resume_upload_duration_seconds",
		Help:      "Duration of resume upload including AI feedback generation.",
		Buckets:   prometheus.DefBuckets,
	},
)

package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	suspicionsDetectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fraud_suspicions_detected_total",
		Help: "Suspicions produced by fraud checks, by type and severity",
	}, []string{"type", "severity"})

	suspicionsRecordedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fraud_suspicions_recorded_total",
		Help: "Suspicious referral rows written, by type",
	}, []string{"type"})

	checkBranchFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fraud_check_branch_failures_total",
		Help: "Fraud check branches that failed open, by branch and reason",
	}, []string{"branch", "reason"})

	checkBranchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fraud_check_branch_duration_seconds",
		Help:    "Latency of individual fraud check branches",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"branch"})

	loopDetectorFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fraud_loop_detector_fallbacks_total",
		Help: "Times loop detection fell back to the iterative walk, by cause",
	}, []string{"cause"})

	referralGraphCyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fraud_referral_graph_cycles_total",
		Help: "Pre-existing cycles found in the stored referral graph during ancestor walks",
	})

	dispatchDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fraud_dispatch_dropped_total",
		Help: "Fraud checks dropped because the worker queue was full",
	}, []string{"pool"})

	duplicateEventsSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fraud_duplicate_events_skipped_total",
		Help: "Referral events skipped because they were already claimed",
	}, []string{"source"})

	malformedEventsSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fraud_malformed_events_skipped_total",
		Help: "Events committed without processing because they could not be decoded",
	}, []string{"topic"})
)

// RecordSuspicionDetected counts a detected suspicion
func RecordSuspicionDetected(suspicionType, severity string) {
	suspicionsDetectedTotal.WithLabelValues(suspicionType, severity).Inc()
}

// RecordSuspicionRecorded counts a persisted suspicious referral row
func RecordSuspicionRecorded(suspicionType string) {
	suspicionsRecordedTotal.WithLabelValues(suspicionType).Inc()
}

// RecordBranchFailure counts a failed-open check branch. reason is "error", "timeout" or "panic".
func RecordBranchFailure(branch, reason string) {
	checkBranchFailuresTotal.WithLabelValues(branch, reason).Inc()
}

// ObserveBranchDuration records how long a check branch ran
func ObserveBranchDuration(branch string, d time.Duration) {
	checkBranchDuration.WithLabelValues(branch).Observe(d.Seconds())
}

// RecordLoopDetectorFallback counts a switch to the iterative loop walk
func RecordLoopDetectorFallback(cause string) {
	loopDetectorFallbacksTotal.WithLabelValues(cause).Inc()
}

// RecordReferralGraphCycle counts a pre-existing cycle hit during an ancestor walk
func RecordReferralGraphCycle() {
	referralGraphCyclesTotal.Inc()
}

// RecordDispatchDropped counts a check dropped by a full worker queue
func RecordDispatchDropped(pool string) {
	dispatchDroppedTotal.WithLabelValues(pool).Inc()
}

// RecordDuplicateEventSkipped counts an event skipped by the dedupe claim
func RecordDuplicateEventSkipped(source string) {
	duplicateEventsSkippedTotal.WithLabelValues(source).Inc()
}

// RecordMalformedEventSkipped counts an undecodable message that was committed and skipped
func RecordMalformedEventSkipped(topic string) {
	malformedEventsSkippedTotal.WithLabelValues(topic).Inc()
}

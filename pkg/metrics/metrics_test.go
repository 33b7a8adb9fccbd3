package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, c.Write(&out))
	return out.GetCounter().GetValue()
}

func TestTransitionRecorder_Record(t *testing.T) {
	m := NewWithRegistry("booking", prometheus.NewRegistry())
	rec := NewTransitionRecorder(m, "booking")

	rec.Record("request", "ok")
	rec.Record("request", "ok")
	rec.Record("request", "slot_unavailable")

	assert.Equal(t, 2.0, counterValue(t, m.BookingTransitions.WithLabelValues("booking", "request", "ok")))
	assert.Equal(t, 1.0, counterValue(t, m.BookingTransitions.WithLabelValues("booking", "request", "slot_unavailable")))
}

func TestTransitionRecorder_NilSafe(t *testing.T) {
	var rec *TransitionRecorder
	assert.NotPanics(t, func() { rec.Record("confirm", "ok") })

	disabled := NewTransitionRecorder(nil, "booking")
	assert.NotPanics(t, func() { disabled.Record("confirm", "ok") })
}

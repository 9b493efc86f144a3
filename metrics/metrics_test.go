package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveCall(t *testing.T) {
	registry := prometheus.NewRegistry()
	aMetrics, err := New(registry)
	require.NoError(t, err)

	aMetrics.ObserveCall("eth_chainId", 0, time.Millisecond)
	aMetrics.ObserveCall("eth_chainId", 0, time.Millisecond)
	aMetrics.ObserveCall("eth_subscribe", -32004, time.Millisecond)
	aMetrics.ObserveCall("", -32600, time.Millisecond)
	aMetrics.ObserveCall(strings.Repeat("x", 100), 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(aMetrics.Calls.WithLabelValues("eth_chainId", "0")))
	assert.Equal(t, 1.0, testutil.ToFloat64(aMetrics.Calls.WithLabelValues("eth_subscribe", "-32004")))
	assert.Equal(t, 1.0, testutil.ToFloat64(aMetrics.Calls.WithLabelValues("unknown", "-32600")))
	assert.Equal(t, 1.0, testutil.ToFloat64(aMetrics.Calls.WithLabelValues(strings.Repeat("x", maxMethodLabel), "0")))
}

func TestMetrics_InFlightAndBatch(t *testing.T) {
	registry := prometheus.NewRegistry()
	aMetrics, err := New(registry)
	require.NoError(t, err)

	done := aMetrics.Begin()
	assert.Equal(t, 1.0, testutil.ToFloat64(aMetrics.InFlight))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(aMetrics.InFlight))

	aMetrics.ObserveBatch(3)
	assert.Equal(t, 1, testutil.CollectAndCount(aMetrics.BatchSize))
}

func TestMetrics_Nil(t *testing.T) {
	var aMetrics *Metrics
	aMetrics.ObserveCall("a", 0, time.Second)
	aMetrics.ObserveBatch(1)
	aMetrics.Begin()()
}

func TestNew_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := New(registry)
	require.NoError(t, err)
	_, err = New(registry)
	assert.Error(t, err)
}

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(storeWriteFailures.WithLabelValues("k"))
	StoreWriteFailed("k")
	assert.Equal(t, before+1, testutil.ToFloat64(storeWriteFailures.WithLabelValues("k")))

	beforeImports := testutil.ToFloat64(imports.WithLabelValues("unknown", "invalid"))
	ImportAttempt("", "invalid")
	assert.Equal(t, beforeImports+1, testutil.ToFloat64(imports.WithLabelValues("unknown", "invalid")))

	beforeSaved := testutil.ToFloat64(checksSaved)
	CheckSaved()
	assert.Equal(t, beforeSaved+1, testutil.ToFloat64(checksSaved))
}

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/health", "200"))
	ObserveHTTPRequest("GET", "/health", "200", 5*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/health", "200")))
}

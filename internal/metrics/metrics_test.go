package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordDBQuery(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("test_points"))

	RecordDBQuery("test_points", 10*time.Millisecond, nil)
	assert.Equal(t, before, testutil.ToFloat64(DBQueryErrors.WithLabelValues("test_points")))

	RecordDBQuery("test_points", 10*time.Millisecond, errors.New("connection refused"))
	assert.Equal(t, before+1, testutil.ToFloat64(DBQueryErrors.WithLabelValues("test_points")))
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/test", "400"))

	RecordHTTPRequest("GET", "/test", 400, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/test", "400")))
}

func TestRecordCache(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("test_op"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("test_op"))

	RecordCache("test_op", true)
	RecordCache("test_op", false)
	RecordCache("test_op", false)

	assert.Equal(t, hits+1, testutil.ToFloat64(CacheHits.WithLabelValues("test_op")))
	assert.Equal(t, misses+2, testutil.ToFloat64(CacheMisses.WithLabelValues("test_op")))
}

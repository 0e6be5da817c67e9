package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordActivityWrite(t *testing.T) {
	before := testutil.ToFloat64(ActivityWritesCounter.WithLabelValues("failure"))
	RecordActivityWrite(false)
	assert.Equal(t, before+1, testutil.ToFloat64(ActivityWritesCounter.WithLabelValues("failure")))
}

func TestTrackSummary(t *testing.T) {
	before := testutil.ToFloat64(SummaryRequestsCounter.WithLabelValues("success"))
	done := TrackSummary()
	done("success")
	assert.Equal(t, before+1, testutil.ToFloat64(SummaryRequestsCounter.WithLabelValues("success")))
}

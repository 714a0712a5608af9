package telemetry_test

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/chainkit/telemetry"
)

func TestMetrics(t *testing.T) {
	m := telemetry.NewMetrics()

	m.TxCounter.WithLabelValues("deliver", telemetry.Result(nil), "").Inc()
	m.TxCounter.WithLabelValues("deliver", telemetry.Result(errors.New("boom")), "wasm").Inc()
	m.BlockHeight.Set(7)
	telemetry.MeasureSince(m.CommitHistogram, time.Now())

	require.Equal(t, float64(1), testutil.ToFloat64(m.TxCounter.WithLabelValues("deliver", "ok", "")))
	require.Equal(t, float64(7), testutil.ToFloat64(m.BlockHeight))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	require.True(t, strings.Contains(body, "chainkit_block_height 7"))
	require.True(t, strings.Contains(body, `chainkit_tx_total{codespace="wasm",mode="deliver",result="error"} 1`))
}

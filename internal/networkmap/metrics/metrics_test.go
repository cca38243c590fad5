/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveQuery(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	r.ObserveQuery("LINE", ScopeNetwork, OutcomeSuccess, 10*time.Millisecond)
	r.ObserveQuery("LINE", ScopeNetwork, OutcomeSuccess, 20*time.Millisecond)
	r.ObserveQuery("LINE", ScopeSubstation, OutcomeNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.queries.WithLabelValues("LINE", ScopeNetwork, OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.queries.WithLabelValues("LINE", ScopeSubstation, OutcomeNotFound)))
	assert.Equal(t, 2, testutil.CollectAndCount(r.duration))

	expected := `
# HELP networkmap_queries_total Number of network map queries by kind, scope and outcome.
# TYPE networkmap_queries_total counter
networkmap_queries_total{kind="LINE",outcome="not_found",scope="substations"} 1
networkmap_queries_total{kind="LINE",outcome="success",scope="network"} 2
`
	require.NoError(t, testutil.CollectAndCompare(r.queries, strings.NewReader(expected)))
}

func TestNilRecorderIgnoresObservations(t *testing.T) {
	t.Parallel()
	var r *Recorder
	assert.NotPanics(t, func() { r.ObserveQuery("ALL", ScopeNetwork, OutcomeSuccess, time.Second) })
}

func TestHandlerServesRegistry(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveQuery("GENERATOR", ScopeNetwork, OutcomeSuccess, time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `networkmap_queries_total{kind="GENERATOR",outcome="success",scope="network"} 1`)
	assert.Contains(t, string(body), "networkmap_query_duration_seconds_bucket")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestScopeOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ScopeNetwork, ScopeOf(nil))
	assert.Equal(t, ScopeNetwork, ScopeOf([]string{}))
	assert.Equal(t, ScopeSubstation, ScopeOf([]string{"P1"}))
}

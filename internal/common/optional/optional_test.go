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

package optional

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type measurement struct {
	ID string         `json:"id"`
	P  Value[float64] `json:"p,omitzero"`
	Q  Value[float64] `json:"q,omitzero"`
}

func TestZeroIsDefined(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(measurement{ID: "GEN", P: Of(0.0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"GEN","p":0}`, string(out))
}

func TestUndefinedIsOmitted(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(measurement{ID: "GEN"})
	require.NoError(t, err)
	assert.Equal(t, `{"id":"GEN"}`, string(out))
}

func TestFullPrecision(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(measurement{ID: "L", P: Of(3.33), Q: Of(4.440000001)})
	require.NoError(t, err)
	assert.Equal(t, `{"id":"L","p":3.33,"q":4.440000001}`, string(out))
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var m measurement
	require.NoError(t, json.Unmarshal([]byte(`{"id":"X","p":null,"q":12.5}`), &m))
	assert.False(t, m.P.IsDefined())
	assert.True(t, m.Q.IsDefined())
	assert.Equal(t, 12.5, m.Q.OrElse(-1))
}

func TestHelpers(t *testing.T) {
	t.Parallel()

	nan, zero, v := math.NaN(), 0.0, 2.5
	assert.False(t, Float(&nan).IsDefined())
	assert.Equal(t, Of(0.0), Float(&zero))
	assert.Equal(t, Of(2.5), Float(&v))
	assert.Equal(t, Empty[float64](), Float(nil))
	assert.Equal(t, 3, Empty[int]().OrElse(3))
}

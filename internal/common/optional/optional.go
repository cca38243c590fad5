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

// Package optional provides a defined-or-absent value wrapper for measurements
// and setpoints that may not have been computed yet.
//
// A Value is distinct from its zero contents: Of(0.0) is defined and
// serializes as 0, while Empty serializes as nothing when the field carries
// the `omitzero` JSON option.
package optional

import (
	"bytes"
	"encoding/json"
	"math"
)

// Value holds an optional T.
type Value[T any] struct {
	value   T
	defined bool
}

// Of returns a defined Value.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, defined: true}
}

// Empty returns an undefined Value.
func Empty[T any]() Value[T] {
	return Value[T]{}
}

// Float returns Of(*p), or Empty when p is nil or NaN. Documents read back
// from MongoDB may carry NaN doubles for measurements that were never set.
func Float(p *float64) Value[float64] {
	if p == nil || math.IsNaN(*p) {
		return Empty[float64]()
	}
	return Of(*p)
}

// IsDefined reports whether a value is present.
func (v Value[T]) IsDefined() bool {
	return v.defined
}

// OrElse returns the value when defined, def otherwise.
func (v Value[T]) OrElse(def T) T {
	if v.defined {
		return v.value
	}
	return def
}

// IsZero lets encoding/json drop undefined values under `omitzero`.
func (v Value[T]) IsZero() bool {
	return !v.defined
}

// MarshalJSON encodes the contained value, or null when undefined.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.defined {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

// UnmarshalJSON decodes null as undefined.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Empty[T]()
		return nil
	}
	var inner T
	if err := json.Unmarshal(data, &inner); err != nil {
		return err
	}
	*v = Of(inner)
	return nil
}

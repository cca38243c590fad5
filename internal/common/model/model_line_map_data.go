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

package model

import "github.com/gridsuite/network-map-go/internal/common/optional"

// LineMapData - an AC line between two voltage levels
type LineMapData struct {
	ID                 string                  `json:"id"`
	Name               string                  `json:"name"`
	VoltageLevelID1    string                  `json:"voltageLevelId1"`
	VoltageLevelID2    string                  `json:"voltageLevelId2"`
	Terminal1Connected bool                    `json:"terminal1Connected"`
	Terminal2Connected bool                    `json:"terminal2Connected"`
	P1                 optional.Value[float64] `json:"p1,omitzero"`
	Q1                 optional.Value[float64] `json:"q1,omitzero"`
	I1                 optional.Value[float64] `json:"i1,omitzero"`
	P2                 optional.Value[float64] `json:"p2,omitzero"`
	Q2                 optional.Value[float64] `json:"q2,omitzero"`
	I2                 optional.Value[float64] `json:"i2,omitzero"`
	PermanentLimit1    optional.Value[float64] `json:"permanentLimit1,omitzero"`
	PermanentLimit2    optional.Value[float64] `json:"permanentLimit2,omitzero"`
}

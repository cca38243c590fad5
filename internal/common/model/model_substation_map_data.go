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

// SubstationMapData - a substation with its voltage levels
type SubstationMapData struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	CountryName   optional.Value[string] `json:"countryName,omitzero"`
	VoltageLevels []VoltageLevelMapData  `json:"voltageLevels"`
}

// VoltageLevelMapData - a voltage level and its bus view buses
type VoltageLevelMapData struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	SubstationID   string       `json:"substationId"`
	NominalVoltage float64      `json:"nominalVoltage"`
	Buses          []BusMapData `json:"buses"`
}

// BusMapData - a bus view bus; V is omitted until computed
type BusMapData struct {
	ID string                  `json:"id"`
	V  optional.Value[float64] `json:"v,omitzero"`
}

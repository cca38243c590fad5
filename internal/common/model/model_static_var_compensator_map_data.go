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

// StaticVarCompensatorMapData - a static var compensator
type StaticVarCompensatorMapData struct {
	ID                    string                  `json:"id"`
	Name                  string                  `json:"name"`
	VoltageLevelID        string                  `json:"voltageLevelId"`
	TerminalConnected     bool                    `json:"terminalConnected"`
	RegulationMode        string                  `json:"regulationMode"`
	P                     optional.Value[float64] `json:"p,omitzero"`
	Q                     optional.Value[float64] `json:"q,omitzero"`
	VoltageSetpoint       optional.Value[float64] `json:"voltageSetpoint,omitzero"`
	ReactivePowerSetpoint optional.Value[float64] `json:"reactivePowerSetpoint,omitzero"`
}

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

// ThreeWindingsTransformerMapData - a three windings transformer, fields suffixed by leg
type ThreeWindingsTransformerMapData struct {
	ID                       string                  `json:"id"`
	Name                     string                  `json:"name"`
	VoltageLevelID1          string                  `json:"voltageLevelId1"`
	VoltageLevelID2          string                  `json:"voltageLevelId2"`
	VoltageLevelID3          string                  `json:"voltageLevelId3"`
	Terminal1Connected       bool                    `json:"terminal1Connected"`
	Terminal2Connected       bool                    `json:"terminal2Connected"`
	Terminal3Connected       bool                    `json:"terminal3Connected"`
	P1                       optional.Value[float64] `json:"p1,omitzero"`
	Q1                       optional.Value[float64] `json:"q1,omitzero"`
	I1                       optional.Value[float64] `json:"i1,omitzero"`
	P2                       optional.Value[float64] `json:"p2,omitzero"`
	Q2                       optional.Value[float64] `json:"q2,omitzero"`
	I2                       optional.Value[float64] `json:"i2,omitzero"`
	P3                       optional.Value[float64] `json:"p3,omitzero"`
	Q3                       optional.Value[float64] `json:"q3,omitzero"`
	I3                       optional.Value[float64] `json:"i3,omitzero"`
	PermanentLimit1          optional.Value[float64] `json:"permanentLimit1,omitzero"`
	PermanentLimit2          optional.Value[float64] `json:"permanentLimit2,omitzero"`
	PermanentLimit3          optional.Value[float64] `json:"permanentLimit3,omitzero"`
	RatioTapChanger1Position optional.Value[int]     `json:"ratioTapChanger1Position,omitzero"`
	RatioTapChanger2Position optional.Value[int]     `json:"ratioTapChanger2Position,omitzero"`
	RatioTapChanger3Position optional.Value[int]     `json:"ratioTapChanger3Position,omitzero"`
	PhaseTapChanger1Position optional.Value[int]     `json:"phaseTapChanger1Position,omitzero"`
	PhaseTapChanger2Position optional.Value[int]     `json:"phaseTapChanger2Position,omitzero"`
	PhaseTapChanger3Position optional.Value[int]     `json:"phaseTapChanger3Position,omitzero"`
	RatioTapChanger1         *TapChangerData         `json:"ratioTapChanger1,omitempty"`
	RatioTapChanger2         *TapChangerData         `json:"ratioTapChanger2,omitempty"`
	RatioTapChanger3         *TapChangerData         `json:"ratioTapChanger3,omitempty"`
	PhaseTapChanger1         *TapChangerData         `json:"phaseTapChanger1,omitempty"`
	PhaseTapChanger2         *TapChangerData         `json:"phaseTapChanger2,omitempty"`
	PhaseTapChanger3         *TapChangerData         `json:"phaseTapChanger3,omitempty"`
}

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

// AllMapData - every equipment collection of a network or scope. Each
// collection is always serialized, as [] when empty.
type AllMapData struct {
	Substations               []SubstationMapData               `json:"substations"`
	Lines                     []LineMapData                     `json:"lines"`
	TwoWindingsTransformers   []TwoWindingsTransformerMapData   `json:"twoWindingsTransformers"`
	ThreeWindingsTransformers []ThreeWindingsTransformerMapData `json:"threeWindingsTransformers"`
	Generators                []GeneratorMapData                `json:"generators"`
	Batteries                 []BatteryMapData                  `json:"batteries"`
	DanglingLines             []DanglingLineMapData             `json:"danglingLines"`
	HvdcLines                 []HvdcLineMapData                 `json:"hvdcLines"`
	LccConverterStations      []LccConverterStationMapData      `json:"lccConverterStations"`
	Loads                     []LoadMapData                     `json:"loads"`
	ShuntCompensators         []ShuntCompensatorMapData         `json:"shuntCompensators"`
	StaticVarCompensators     []StaticVarCompensatorMapData     `json:"staticVarCompensators"`
	VscConverterStations      []VscConverterStationMapData      `json:"vscConverterStations"`
}

// NewAllMapData returns an AllMapData with every collection empty but non-nil.
func NewAllMapData() *AllMapData {
	return &AllMapData{
		Substations:               []SubstationMapData{},
		Lines:                     []LineMapData{},
		TwoWindingsTransformers:   []TwoWindingsTransformerMapData{},
		ThreeWindingsTransformers: []ThreeWindingsTransformerMapData{},
		Generators:                []GeneratorMapData{},
		Batteries:                 []BatteryMapData{},
		DanglingLines:             []DanglingLineMapData{},
		HvdcLines:                 []HvdcLineMapData{},
		LccConverterStations:      []LccConverterStationMapData{},
		Loads:                     []LoadMapData{},
		ShuntCompensators:         []ShuntCompensatorMapData{},
		StaticVarCompensators:     []StaticVarCompensatorMapData{},
		VscConverterStations:      []VscConverterStationMapData{},
	}
}

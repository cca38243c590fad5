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

// Package snapshot defines the stored record shapes of a network and decodes
// them into the topology model. The same records are used for whole-network
// JSON documents (file system, S3), for jsonb payloads in postgres and for
// mongodb documents.
package snapshot

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is a complete network.
type Document struct {
	ID          uuid.UUID    `json:"id" bson:"-"`
	Substations []Substation `json:"substations" bson:"substations"`
	Equipment   []Equipment  `json:"equipment" bson:"equipment"`
	HvdcLines   []HvdcLine   `json:"hvdcLines" bson:"hvdcLines"`
}

// Substation is stored with its voltage levels embedded.
type Substation struct {
	ID            string         `json:"id" bson:"id"`
	Name          string         `json:"name,omitempty" bson:"name,omitempty"`
	Country       string         `json:"country,omitempty" bson:"country,omitempty"`
	VoltageLevels []VoltageLevel `json:"voltageLevels" bson:"voltageLevels"`
}

// VoltageLevel record.
type VoltageLevel struct {
	ID       string  `json:"id" bson:"id"`
	Name     string  `json:"name,omitempty" bson:"name,omitempty"`
	NominalV float64 `json:"nominalV" bson:"nominalV"`
	Buses    []Bus   `json:"buses,omitempty" bson:"buses,omitempty"`
}

// Bus record.
type Bus struct {
	ID string   `json:"id" bson:"id"`
	V  *float64 `json:"v,omitempty" bson:"v,omitempty"`
}

// Side is one terminal of an equipment together with the per-side limits and
// tap changers of branches and transformers.
type Side struct {
	VoltageLevelID  string      `json:"voltageLevelId" bson:"voltageLevelId"`
	Connected       bool        `json:"connected" bson:"connected"`
	P               *float64    `json:"p,omitempty" bson:"p,omitempty"`
	Q               *float64    `json:"q,omitempty" bson:"q,omitempty"`
	I               *float64    `json:"i,omitempty" bson:"i,omitempty"`
	PermanentLimit  *float64    `json:"permanentLimit,omitempty" bson:"permanentLimit,omitempty"`
	RatioTapChanger *TapChanger `json:"ratioTapChanger,omitempty" bson:"ratioTapChanger,omitempty"`
	PhaseTapChanger *TapChanger `json:"phaseTapChanger,omitempty" bson:"phaseTapChanger,omitempty"`
}

// TapChanger record.
type TapChanger struct {
	LowTapPosition  int `json:"lowTapPosition" bson:"lowTapPosition"`
	HighTapPosition int `json:"highTapPosition" bson:"highTapPosition"`
	TapPosition     int `json:"tapPosition" bson:"tapPosition"`
}

// Equipment is a wide record covering every connectable type; Type selects
// which attributes are meaningful.
type Equipment struct {
	Type  string `json:"type" bson:"type"`
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Sides []Side `json:"sides" bson:"sides"`

	EnergySource          string   `json:"energySource,omitempty" bson:"energySource,omitempty"`
	LoadType              string   `json:"loadType,omitempty" bson:"loadType,omitempty"`
	RegulationMode        string   `json:"regulationMode,omitempty" bson:"regulationMode,omitempty"`
	UcteXnodeCode         string   `json:"ucteXnodeCode,omitempty" bson:"ucteXnodeCode,omitempty"`
	TargetP               *float64 `json:"targetP,omitempty" bson:"targetP,omitempty"`
	TargetQ               *float64 `json:"targetQ,omitempty" bson:"targetQ,omitempty"`
	TargetV               *float64 `json:"targetV,omitempty" bson:"targetV,omitempty"`
	TargetDeadband        *float64 `json:"targetDeadband,omitempty" bson:"targetDeadband,omitempty"`
	MinP                  *float64 `json:"minP,omitempty" bson:"minP,omitempty"`
	MaxP                  *float64 `json:"maxP,omitempty" bson:"maxP,omitempty"`
	P0                    *float64 `json:"p0,omitempty" bson:"p0,omitempty"`
	Q0                    *float64 `json:"q0,omitempty" bson:"q0,omitempty"`
	BPerSection           *float64 `json:"bPerSection,omitempty" bson:"bPerSection,omitempty"`
	Bmin                  *float64 `json:"bmin,omitempty" bson:"bmin,omitempty"`
	Bmax                  *float64 `json:"bmax,omitempty" bson:"bmax,omitempty"`
	VoltageSetpoint       *float64 `json:"voltageSetpoint,omitempty" bson:"voltageSetpoint,omitempty"`
	ReactivePowerSetpoint *float64 `json:"reactivePowerSetpoint,omitempty" bson:"reactivePowerSetpoint,omitempty"`
	VoltageRegulatorOn    bool     `json:"voltageRegulatorOn,omitempty" bson:"voltageRegulatorOn,omitempty"`
	SectionCount          int      `json:"sectionCount,omitempty" bson:"sectionCount,omitempty"`
	MaximumSectionCount   int      `json:"maximumSectionCount,omitempty" bson:"maximumSectionCount,omitempty"`
	LossFactor            float32  `json:"lossFactor,omitempty" bson:"lossFactor,omitempty"`
	PowerFactor           float32  `json:"powerFactor,omitempty" bson:"powerFactor,omitempty"`
	HvdcLineID            string   `json:"hvdcLineId,omitempty" bson:"hvdcLineId,omitempty"`
}

// VoltageLevelIDs returns the distinct voltage levels of the record sides.
func (e Equipment) VoltageLevelIDs() []string {
	ids := make([]string, 0, len(e.Sides))
	seen := make(map[string]struct{}, len(e.Sides))
	for _, s := range e.Sides {
		if _, ok := seen[s.VoltageLevelID]; ok {
			continue
		}
		seen[s.VoltageLevelID] = struct{}{}
		ids = append(ids, s.VoltageLevelID)
	}
	return ids
}

// HvdcLine record.
type HvdcLine struct {
	ID                  string  `json:"id" bson:"id"`
	Name                string  `json:"name,omitempty" bson:"name,omitempty"`
	ConvertersMode      string  `json:"convertersMode" bson:"convertersMode"`
	ConverterStationID1 string  `json:"converterStationId1" bson:"converterStationId1"`
	ConverterStationID2 string  `json:"converterStationId2" bson:"converterStationId2"`
	R                   float64 `json:"r" bson:"r"`
	NominalV            float64 `json:"nominalV" bson:"nominalV"`
	ActivePowerSetpoint float64 `json:"activePowerSetpoint" bson:"activePowerSetpoint"`
	MaxP                float64 `json:"maxP" bson:"maxP"`
}

// ReadDocument decodes a JSON network document.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode network document: %w", err)
	}
	if doc.ID == uuid.Nil {
		return nil, fmt.Errorf("decode network document: missing network id")
	}
	return &doc, nil
}

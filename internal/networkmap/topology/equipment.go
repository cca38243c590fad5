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

package topology

import "github.com/gridsuite/network-map-go/internal/common/optional"

// Identifiable carries the id and optional display name shared by every
// network element.
type Identifiable struct {
	ID   string
	Name string
}

// GetID returns the element id.
func (i Identifiable) GetID() string {
	return i.ID
}

// NameOrID returns the display name, falling back to the id when unnamed.
func (i Identifiable) NameOrID() string {
	if i.Name == "" {
		return i.ID
	}
	return i.Name
}

// Terminal is the connection point between one side of an equipment and a
// voltage level. P, Q and I stay undefined until computed.
type Terminal struct {
	VoltageLevelID string
	Connected      bool
	P              optional.Value[float64]
	Q              optional.Value[float64]
	I              optional.Value[float64]
}

// CurrentLimits is attached per side of branches and transformer legs.
type CurrentLimits struct {
	PermanentLimit optional.Value[float64]
}

// PermanentLimitOf returns the permanent limit of l, undefined when l is nil.
func PermanentLimitOf(l *CurrentLimits) optional.Value[float64] {
	if l == nil {
		return optional.Empty[float64]()
	}
	return l.PermanentLimit
}

// TapChanger is a ratio or phase tap changer on a transformer winding.
type TapChanger struct {
	LowTapPosition  int
	HighTapPosition int
	TapPosition     int
}

// Connectable is an equipment attached to voltage levels through 1 to 3
// terminals. The set of implementations is closed to this package.
type Connectable interface {
	GetID() string
	NameOrID() string
	Kind() Kind
	Terminals() []*Terminal
	connectable()
}

// Line is an AC branch between two voltage levels.
type Line struct {
	Identifiable
	Terminal1      Terminal
	Terminal2      Terminal
	CurrentLimits1 *CurrentLimits
	CurrentLimits2 *CurrentLimits
}

// TwoWindingsTransformer is a transformer with two sides.
type TwoWindingsTransformer struct {
	Identifiable
	Terminal1       Terminal
	Terminal2       Terminal
	CurrentLimits1  *CurrentLimits
	CurrentLimits2  *CurrentLimits
	RatioTapChanger *TapChanger
	PhaseTapChanger *TapChanger
}

// Leg is one winding of a three windings transformer.
type Leg struct {
	Terminal        Terminal
	CurrentLimits   *CurrentLimits
	RatioTapChanger *TapChanger
	PhaseTapChanger *TapChanger
}

// ThreeWindingsTransformer is a transformer with three legs.
type ThreeWindingsTransformer struct {
	Identifiable
	Legs [3]Leg
}

// Generator is an injection producing active power.
type Generator struct {
	Identifiable
	Terminal           Terminal
	EnergySource       string
	TargetP            float64
	TargetQ            optional.Value[float64]
	TargetV            optional.Value[float64]
	MinP               float64
	MaxP               float64
	VoltageRegulatorOn bool
}

// Battery is a storage injection.
type Battery struct {
	Identifiable
	Terminal Terminal
	P0       float64
	Q0       float64
	MinP     float64
	MaxP     float64
}

// Load is a consumption injection.
type Load struct {
	Identifiable
	Terminal Terminal
	LoadType string
	P0       float64
	Q0       float64
}

// ShuntCompensator is a sectioned shunt.
type ShuntCompensator struct {
	Identifiable
	Terminal            Terminal
	SectionCount        int
	MaximumSectionCount int
	BPerSection         optional.Value[float64]
	VoltageRegulatorOn  bool
	TargetV             optional.Value[float64]
	TargetDeadband      optional.Value[float64]
}

// StaticVarCompensator is a regulated static var compensator.
type StaticVarCompensator struct {
	Identifiable
	Terminal              Terminal
	RegulationMode        string
	VoltageSetpoint       optional.Value[float64]
	ReactivePowerSetpoint optional.Value[float64]
	Bmin                  float64
	Bmax                  float64
}

// DanglingLine is a line with one side connected to the network and the
// other to a boundary node.
type DanglingLine struct {
	Identifiable
	Terminal      Terminal
	P0            float64
	Q0            float64
	UcteXnodeCode string
}

// HvdcConverterStation holds the fields shared by LCC and VSC stations.
// HvdcLineID is empty when the station is not attached to an HVDC line.
type HvdcConverterStation struct {
	Identifiable
	Terminal   Terminal
	LossFactor float32
	HvdcLineID string
}

// converterStation gives Graph access to the shared station fields.
func (s *HvdcConverterStation) converterStation() *HvdcConverterStation {
	return s
}

// LccConverterStation is a line-commutated converter station.
type LccConverterStation struct {
	HvdcConverterStation
	PowerFactor float32
}

// VscConverterStation is a voltage source converter station.
type VscConverterStation struct {
	HvdcConverterStation
	VoltageRegulatorOn    bool
	VoltageSetpoint       optional.Value[float64]
	ReactivePowerSetpoint optional.Value[float64]
}

// ConverterStation is implemented by LCC and VSC stations.
type ConverterStation interface {
	Connectable
	converterStation() *HvdcConverterStation
}

// HvdcLineIDOf returns the HVDC line referenced by a converter station, or ""
// for any other connectable.
func HvdcLineIDOf(c Connectable) string {
	if s, ok := c.(ConverterStation); ok {
		return s.converterStation().HvdcLineID
	}
	return ""
}

// HvdcLine links exactly two converter stations by id.
type HvdcLine struct {
	Identifiable
	ConvertersMode      string
	ConverterStationID1 string
	ConverterStationID2 string
	R                   float64
	NominalV            float64
	ActivePowerSetpoint float64
	MaxP                float64
}

func (*Line) Kind() Kind                     { return KindLine }
func (*TwoWindingsTransformer) Kind() Kind   { return KindTwoWindingsTransformer }
func (*ThreeWindingsTransformer) Kind() Kind { return KindThreeWindingsTransformer }
func (*Generator) Kind() Kind                { return KindGenerator }
func (*Battery) Kind() Kind                  { return KindBattery }
func (*Load) Kind() Kind                     { return KindLoad }
func (*ShuntCompensator) Kind() Kind         { return KindShuntCompensator }
func (*StaticVarCompensator) Kind() Kind     { return KindStaticVarCompensator }
func (*DanglingLine) Kind() Kind             { return KindDanglingLine }
func (*LccConverterStation) Kind() Kind      { return KindLccConverterStation }
func (*VscConverterStation) Kind() Kind      { return KindVscConverterStation }

func (l *Line) Terminals() []*Terminal { return []*Terminal{&l.Terminal1, &l.Terminal2} }
func (t *TwoWindingsTransformer) Terminals() []*Terminal {
	return []*Terminal{&t.Terminal1, &t.Terminal2}
}
func (t *ThreeWindingsTransformer) Terminals() []*Terminal {
	return []*Terminal{&t.Legs[0].Terminal, &t.Legs[1].Terminal, &t.Legs[2].Terminal}
}
func (g *Generator) Terminals() []*Terminal            { return []*Terminal{&g.Terminal} }
func (b *Battery) Terminals() []*Terminal              { return []*Terminal{&b.Terminal} }
func (l *Load) Terminals() []*Terminal                 { return []*Terminal{&l.Terminal} }
func (s *ShuntCompensator) Terminals() []*Terminal     { return []*Terminal{&s.Terminal} }
func (s *StaticVarCompensator) Terminals() []*Terminal { return []*Terminal{&s.Terminal} }
func (d *DanglingLine) Terminals() []*Terminal         { return []*Terminal{&d.Terminal} }
func (s *HvdcConverterStation) Terminals() []*Terminal { return []*Terminal{&s.Terminal} }

func (*Line) connectable()                     {}
func (*TwoWindingsTransformer) connectable()   {}
func (*ThreeWindingsTransformer) connectable() {}
func (*Generator) connectable()                {}
func (*Battery) connectable()                  {}
func (*Load) connectable()                     {}
func (*ShuntCompensator) connectable()         {}
func (*StaticVarCompensator) connectable()     {}
func (*DanglingLine) connectable()             {}
func (*HvdcConverterStation) connectable()     {}

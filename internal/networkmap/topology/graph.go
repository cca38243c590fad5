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

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Graph is a fully loaded, in-memory Network. Build it with NewGraph and the
// Add methods, then share it read-only.
type Graph struct {
	id uuid.UUID

	substations     []*Substation
	substationIndex map[string]*Substation
	voltageLevels   map[string]*VoltageLevel

	connectables     []Connectable
	connectableIndex map[string]Connectable
	byVoltageLevel   map[string][]Connectable

	hvdcLines     []*HvdcLine
	hvdcLineIndex map[string]*HvdcLine
}

// NewGraph returns an empty graph for the network id.
func NewGraph(id uuid.UUID) *Graph {
	return &Graph{
		id:               id,
		substationIndex:  map[string]*Substation{},
		voltageLevels:    map[string]*VoltageLevel{},
		connectableIndex: map[string]Connectable{},
		byVoltageLevel:   map[string][]Connectable{},
		hvdcLineIndex:    map[string]*HvdcLine{},
	}
}

// AddSubstation registers a substation with its voltage levels.
func (g *Graph) AddSubstation(s *Substation) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("substation without id")
	}
	if _, exists := g.substationIndex[s.ID]; exists {
		return fmt.Errorf("duplicate substation %q", s.ID)
	}
	for _, vl := range s.VoltageLevels {
		if vl == nil || vl.ID == "" {
			return fmt.Errorf("substation %q has a voltage level without id", s.ID)
		}
		if _, exists := g.voltageLevels[vl.ID]; exists {
			return fmt.Errorf("voltage level %q belongs to more than one substation", vl.ID)
		}
		if vl.SubstationID == "" {
			vl.SubstationID = s.ID
		} else if vl.SubstationID != s.ID {
			return fmt.Errorf("voltage level %q declares substation %q but is owned by %q", vl.ID, vl.SubstationID, s.ID)
		}
	}
	for _, vl := range s.VoltageLevels {
		g.voltageLevels[vl.ID] = vl
	}
	g.substations = append(g.substations, s)
	g.substationIndex[s.ID] = s
	return nil
}

// AddConnectable registers an equipment. Every terminal must reference a
// voltage level already added.
func (g *Graph) AddConnectable(c Connectable) error {
	if c == nil || c.GetID() == "" {
		return fmt.Errorf("connectable without id")
	}
	if _, exists := g.connectableIndex[c.GetID()]; exists {
		return fmt.Errorf("duplicate connectable %q", c.GetID())
	}
	for _, t := range c.Terminals() {
		if _, ok := g.voltageLevels[t.VoltageLevelID]; !ok {
			return fmt.Errorf("connectable %q references unknown voltage level %q", c.GetID(), t.VoltageLevelID)
		}
	}
	g.connectables = append(g.connectables, c)
	g.connectableIndex[c.GetID()] = c
	for _, vlID := range VoltageLevelIDs(c) {
		g.byVoltageLevel[vlID] = append(g.byVoltageLevel[vlID], c)
	}
	return nil
}

// AddHvdcLine registers an HVDC line and fills the back-reference on both of
// its converter stations, which must already be added.
func (g *Graph) AddHvdcLine(l *HvdcLine) error {
	if l == nil || l.ID == "" {
		return fmt.Errorf("hvdc line without id")
	}
	if _, exists := g.hvdcLineIndex[l.ID]; exists {
		return fmt.Errorf("duplicate hvdc line %q", l.ID)
	}
	if l.ConverterStationID1 == l.ConverterStationID2 {
		return fmt.Errorf("hvdc line %q must reference two distinct converter stations", l.ID)
	}
	stations := make([]*HvdcConverterStation, 0, 2)
	for _, id := range []string{l.ConverterStationID1, l.ConverterStationID2} {
		c, ok := g.connectableIndex[id]
		if !ok {
			return fmt.Errorf("hvdc line %q references unknown converter station %q", l.ID, id)
		}
		cs, ok := c.(ConverterStation)
		if !ok {
			return fmt.Errorf("hvdc line %q references %q which is not a converter station", l.ID, id)
		}
		station := cs.converterStation()
		if station.HvdcLineID != "" && station.HvdcLineID != l.ID {
			return fmt.Errorf("converter station %q already belongs to hvdc line %q", id, station.HvdcLineID)
		}
		stations = append(stations, station)
	}
	for _, s := range stations {
		s.HvdcLineID = l.ID
	}
	g.hvdcLines = append(g.hvdcLines, l)
	g.hvdcLineIndex[l.ID] = l
	return nil
}

// Validate checks that every station back-reference resolves to a line
// naming that station.
func (g *Graph) Validate() error {
	for _, c := range g.connectables {
		id := HvdcLineIDOf(c)
		if id == "" {
			continue
		}
		l, ok := g.hvdcLineIndex[id]
		if !ok {
			return fmt.Errorf("converter station %q references unknown hvdc line %q", c.GetID(), id)
		}
		if l.ConverterStationID1 != c.GetID() && l.ConverterStationID2 != c.GetID() {
			return fmt.Errorf("converter station %q claims hvdc line %q which connects %q and %q", c.GetID(), id, l.ConverterStationID1, l.ConverterStationID2)
		}
	}
	return nil
}

// UUID implements Network.
func (g *Graph) UUID() uuid.UUID {
	return g.id
}

// Substations implements Network.
func (g *Graph) Substations(context.Context) ([]*Substation, error) {
	return g.substations, nil
}

// Substation implements Network.
func (g *Graph) Substation(_ context.Context, id string) (*Substation, error) {
	return g.substationIndex[id], nil
}

// Connectables implements Network.
func (g *Graph) Connectables(_ context.Context, kind Kind) ([]Connectable, error) {
	out := make([]Connectable, 0)
	for _, c := range g.connectables {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out, nil
}

// VoltageLevelConnectables implements Network.
func (g *Graph) VoltageLevelConnectables(_ context.Context, voltageLevelID string, kinds ...Kind) ([]Connectable, error) {
	all := g.byVoltageLevel[voltageLevelID]
	if len(kinds) == 0 {
		return all, nil
	}
	out := make([]Connectable, 0, len(all))
	for _, c := range all {
		if MatchesKinds(c, kinds) {
			out = append(out, c)
		}
	}
	return out, nil
}

// HvdcLines implements Network.
func (g *Graph) HvdcLines(context.Context) ([]*HvdcLine, error) {
	return g.hvdcLines, nil
}

// HvdcLine implements Network.
func (g *Graph) HvdcLine(_ context.Context, id string) (*HvdcLine, error) {
	return g.hvdcLineIndex[id], nil
}

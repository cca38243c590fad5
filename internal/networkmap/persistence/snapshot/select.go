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

package snapshot

import "github.com/gridsuite/network-map-go/internal/networkmap/topology"

// The Select methods apply the filters of persistence.Loader to a document:
// a nil filter keeps everything, an empty one keeps nothing. Document order is
// preserved.

// SelectSubstations returns the substations whose id is in ids.
func (d *Document) SelectSubstations(ids []string) []Substation {
	keep := filter(ids)
	out := make([]Substation, 0)
	for _, s := range d.Substations {
		if keep(s.ID) {
			out = append(out, s)
		}
	}
	return out
}

// SelectEquipment returns the equipment of one of kinds with a side in one of
// voltageLevelIDs.
func (d *Document) SelectEquipment(voltageLevelIDs []string, kinds []topology.Kind) []Equipment {
	keepVoltageLevel := filter(voltageLevelIDs)
	kindNames := make([]string, 0, len(kinds))
	for _, k := range kinds {
		kindNames = append(kindNames, string(k))
	}
	if kinds == nil {
		kindNames = nil
	}
	keepKind := filter(kindNames)

	out := make([]Equipment, 0)
	for _, e := range d.Equipment {
		if !keepKind(e.Type) {
			continue
		}
		if voltageLevelIDs == nil {
			out = append(out, e)
			continue
		}
		for _, vl := range e.VoltageLevelIDs() {
			if keepVoltageLevel(vl) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// SelectHvdcLines returns the HVDC lines whose id is in ids.
func (d *Document) SelectHvdcLines(ids []string) []HvdcLine {
	keep := filter(ids)
	out := make([]HvdcLine, 0)
	for _, l := range d.HvdcLines {
		if keep(l.ID) {
			out = append(out, l)
		}
	}
	return out
}

func filter(values []string) func(string) bool {
	if values == nil {
		return func(string) bool { return true }
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(v string) bool {
		_, ok := set[v]
		return ok
	}
}

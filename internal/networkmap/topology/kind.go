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

// Package topology holds the read-only electrical network model consumed by
// the network map queries: substations, voltage levels, buses, equipment
// ("connectables") with their terminals, and HVDC lines.
package topology

import "fmt"

// Kind identifies a queryable class of network element.
type Kind string

// Queryable kinds.
const (
	KindSubstation               Kind = "SUBSTATION"
	KindLine                     Kind = "LINE"
	KindTwoWindingsTransformer   Kind = "TWO_WINDINGS_TRANSFORMER"
	KindThreeWindingsTransformer Kind = "THREE_WINDINGS_TRANSFORMER"
	KindGenerator                Kind = "GENERATOR"
	KindBattery                  Kind = "BATTERY"
	KindDanglingLine             Kind = "DANGLING_LINE"
	KindHvdcLine                 Kind = "HVDC_LINE"
	KindLccConverterStation      Kind = "LCC_CONVERTER_STATION"
	KindVscConverterStation      Kind = "VSC_CONVERTER_STATION"
	KindLoad                     Kind = "LOAD"
	KindShuntCompensator         Kind = "SHUNT_COMPENSATOR"
	KindStaticVarCompensator     Kind = "STATIC_VAR_COMPENSATOR"
)

// Kinds lists every queryable kind in response order.
var Kinds = []Kind{
	KindSubstation,
	KindLine,
	KindTwoWindingsTransformer,
	KindThreeWindingsTransformer,
	KindGenerator,
	KindBattery,
	KindDanglingLine,
	KindHvdcLine,
	KindLccConverterStation,
	KindVscConverterStation,
	KindLoad,
	KindShuntCompensator,
	KindStaticVarCompensator,
}

// ConnectableKinds lists the kinds attached to voltage levels through terminals.
var ConnectableKinds = []Kind{
	KindLine,
	KindTwoWindingsTransformer,
	KindThreeWindingsTransformer,
	KindGenerator,
	KindBattery,
	KindDanglingLine,
	KindLccConverterStation,
	KindVscConverterStation,
	KindLoad,
	KindShuntCompensator,
	KindStaticVarCompensator,
}

// IsConnectable reports whether k is attached through terminals.
func (k Kind) IsConnectable() bool {
	for _, c := range ConnectableKinds {
		if c == k {
			return true
		}
	}
	return false
}

// ParseKind maps a kind name to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown equipment kind %q", s)
}

func (k Kind) String() string {
	return string(k)
}

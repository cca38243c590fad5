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

// Package topologytest provides the network fixture shared by the network map
// tests: the Eurostag tutorial network extended with a third substation,
// storage, dangling lines, HVDC equipment and compensators.
package topologytest

import (
	"bytes"
	_ "embed"
	"testing"

	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/snapshot"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/google/uuid"
)

//go:embed eurostag-network.json
var eurostagJSON []byte

// NetworkUUID identifies the fixture network.
var NetworkUUID = uuid.MustParse("7928181c-7977-4592-ba19-88027e4254e4")

// UnknownNetworkUUID never resolves.
var UnknownNetworkUUID = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")

// EurostagJSON returns a copy of the fixture document.
func EurostagJSON() []byte {
	return bytes.Clone(eurostagJSON)
}

// EurostagDocument decodes the fixture document.
func EurostagDocument(t testing.TB) *snapshot.Document {
	t.Helper()
	doc, err := snapshot.ReadDocument(bytes.NewReader(eurostagJSON))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return doc
}

// Eurostag builds a fresh graph of the fixture network.
func Eurostag(t testing.TB) *topology.Graph {
	t.Helper()
	g, err := snapshot.BuildGraph(EurostagDocument(t))
	if err != nil {
		t.Fatalf("build fixture graph: %v", err)
	}
	return g
}

// SplitHvdcDocument decodes the fixture with LCC2 moved to VLGEN3, so that
// HVDC1 joins VSC1 in P1 to LCC2 in P3.
func SplitHvdcDocument(t testing.TB) *snapshot.Document {
	t.Helper()
	doc := EurostagDocument(t)
	for i := range doc.Equipment {
		if doc.Equipment[i].ID == "LCC2" {
			doc.Equipment[i].Sides[0].VoltageLevelID = "VLGEN3"
			return doc
		}
	}
	t.Fatalf("fixture has no LCC2")
	return nil
}

// SplitHvdc builds a fresh graph of SplitHvdcDocument.
func SplitHvdc(t testing.TB) *topology.Graph {
	t.Helper()
	g, err := snapshot.BuildGraph(SplitHvdcDocument(t))
	if err != nil {
		t.Fatalf("build split fixture graph: %v", err)
	}
	return g
}

// IDs returns the ids of elements in order.
func IDs[T interface{ GetID() string }](items []T) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.GetID())
	}
	return ids
}

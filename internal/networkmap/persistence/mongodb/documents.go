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

package mongodb

import (
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/snapshot"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionNetworks    = "networks"
	collectionSubstations = "substations"
	collectionEquipment   = "equipment"
	collectionHvdcLines   = "hvdcLines"

	fieldNetworkUUID     = "networkUuid"
	fieldPosition        = "position"
	fieldVoltageLevelIDs = "voltageLevelIds"
)

type networkDocument struct {
	ID string `bson:"_id"`
}

type substationDocument struct {
	NetworkUUID         string `bson:"networkUuid"`
	Position            int    `bson:"position"`
	snapshot.Substation `bson:",inline"`
}

type equipmentDocument struct {
	NetworkUUID        string   `bson:"networkUuid"`
	Position           int      `bson:"position"`
	VoltageLevels      []string `bson:"voltageLevelIds"`
	snapshot.Equipment `bson:",inline"`
}

type hvdcLineDocument struct {
	NetworkUUID       string `bson:"networkUuid"`
	Position          int    `bson:"position"`
	snapshot.HvdcLine `bson:",inline"`
}

func networkFilter(id uuid.UUID) bson.D {
	return bson.D{{Key: "_id", Value: id.String()}}
}

func byNetwork(id uuid.UUID) bson.D {
	return bson.D{{Key: fieldNetworkUUID, Value: id.String()}}
}

func in(field string, values []string) bson.E {
	return bson.E{Key: field, Value: bson.D{{Key: "$in", Value: values}}}
}

func substationFilter(id uuid.UUID, substationIDs []string) bson.D {
	filter := byNetwork(id)
	if substationIDs != nil {
		filter = append(filter, in("id", substationIDs))
	}
	return filter
}

func equipmentFilter(id uuid.UUID, voltageLevelIDs []string, kinds []topology.Kind) bson.D {
	filter := byNetwork(id)
	if voltageLevelIDs != nil {
		filter = append(filter, in(fieldVoltageLevelIDs, voltageLevelIDs))
	}
	if kinds != nil {
		types := make([]string, 0, len(kinds))
		for _, k := range kinds {
			types = append(types, string(k))
		}
		filter = append(filter, in("type", types))
	}
	return filter
}

func hvdcLineFilter(id uuid.UUID, hvdcLineIDs []string) bson.D {
	filter := byNetwork(id)
	if hvdcLineIDs != nil {
		filter = append(filter, in("id", hvdcLineIDs))
	}
	return filter
}

// findInNetworkOrder sorts by insertion position and drops the object id.
func findInNetworkOrder() *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: fieldPosition, Value: 1}}).
		SetProjection(bson.D{{Key: "_id", Value: 0}})
}

func substationDocuments(id uuid.UUID, records []snapshot.Substation) []any {
	docs := make([]any, 0, len(records))
	for i, rec := range records {
		docs = append(docs, substationDocument{NetworkUUID: id.String(), Position: i, Substation: rec})
	}
	return docs
}

func equipmentDocuments(id uuid.UUID, records []snapshot.Equipment) []any {
	docs := make([]any, 0, len(records))
	for i, rec := range records {
		docs = append(docs, equipmentDocument{NetworkUUID: id.String(), Position: i, VoltageLevels: rec.VoltageLevelIDs(), Equipment: rec})
	}
	return docs
}

func hvdcLineDocuments(id uuid.UUID, records []snapshot.HvdcLine) []any {
	docs := make([]any, 0, len(records))
	for i, rec := range records {
		docs = append(docs, hvdcLineDocument{NetworkUUID: id.String(), Position: i, HvdcLine: rec})
	}
	return docs
}

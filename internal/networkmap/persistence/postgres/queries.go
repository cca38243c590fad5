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

package postgres

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // Postgres Driver for Goqu
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/snapshot"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	tableNetwork    = "network"
	tableSubstation = "substation"
	tableEquipment  = "equipment"
	tableHvdcLine   = "hvdc_line"

	colUUID            = "uuid"
	colNetworkUUID     = "network_uuid"
	colPosition        = "position"
	colID              = "id"
	colType            = "type"
	colVoltageLevelIDs = "voltage_level_ids"
	colData            = "data"
)

var dialect = goqu.Dialect("postgres")

func countNetworkQuery(id uuid.UUID) (string, []any, error) {
	return dialect.From(tableNetwork).
		Select(goqu.COUNT("*")).
		Where(goqu.C(colUUID).Eq(id.String())).
		Prepared(true).
		ToSQL()
}

// selectDataQuery reads the payload column of table for one network, in
// network order, restricted by extra conditions.
func selectDataQuery(table string, id uuid.UUID, conditions ...exp.Expression) (string, []any, error) {
	where := append([]exp.Expression{goqu.C(colNetworkUUID).Eq(id.String())}, conditions...)
	return dialect.From(table).
		Select(goqu.C(colData)).
		Where(where...).
		Order(goqu.C(colPosition).Asc()).
		Prepared(true).
		ToSQL()
}

func selectSubstationsQuery(id uuid.UUID, substationIDs []string) (string, []any, error) {
	var conditions []exp.Expression
	if substationIDs != nil {
		conditions = append(conditions, goqu.C(colID).In(substationIDs))
	}
	return selectDataQuery(tableSubstation, id, conditions...)
}

func selectEquipmentQuery(id uuid.UUID, voltageLevelIDs []string, kinds []topology.Kind) (string, []any, error) {
	var conditions []exp.Expression
	if voltageLevelIDs != nil {
		conditions = append(conditions, goqu.L("? && ?", goqu.C(colVoltageLevelIDs), pq.Array(voltageLevelIDs)))
	}
	if kinds != nil {
		types := make([]string, 0, len(kinds))
		for _, k := range kinds {
			types = append(types, string(k))
		}
		conditions = append(conditions, goqu.C(colType).In(types))
	}
	return selectDataQuery(tableEquipment, id, conditions...)
}

func selectHvdcLinesQuery(id uuid.UUID, hvdcLineIDs []string) (string, []any, error) {
	var conditions []exp.Expression
	if hvdcLineIDs != nil {
		conditions = append(conditions, goqu.C(colID).In(hvdcLineIDs))
	}
	return selectDataQuery(tableHvdcLine, id, conditions...)
}

func deleteNetworkQuery(id uuid.UUID) (string, []any, error) {
	return dialect.Delete(tableNetwork).
		Where(goqu.C(colUUID).Eq(id.String())).
		Prepared(true).
		ToSQL()
}

func insertNetworkQuery(id uuid.UUID) (string, []any, error) {
	return dialect.Insert(tableNetwork).
		Rows(goqu.Record{colUUID: id.String()}).
		Prepared(true).
		ToSQL()
}

func insertSubstationsQuery(id uuid.UUID, records []snapshot.Substation) (string, []any, error) {
	rows := make([]any, 0, len(records))
	for i, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return "", nil, fmt.Errorf("marshal substation %q: %w", rec.ID, err)
		}
		rows = append(rows, goqu.Record{colNetworkUUID: id.String(), colPosition: i, colID: rec.ID, colData: string(data)})
	}
	return dialect.Insert(tableSubstation).Rows(rows...).Prepared(true).ToSQL()
}

func insertEquipmentQuery(id uuid.UUID, records []snapshot.Equipment) (string, []any, error) {
	rows := make([]any, 0, len(records))
	for i, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return "", nil, fmt.Errorf("marshal equipment %q: %w", rec.ID, err)
		}
		rows = append(rows, goqu.Record{
			colNetworkUUID:     id.String(),
			colPosition:        i,
			colID:              rec.ID,
			colType:            rec.Type,
			colVoltageLevelIDs: pq.Array(rec.VoltageLevelIDs()),
			colData:            string(data),
		})
	}
	return dialect.Insert(tableEquipment).Rows(rows...).Prepared(true).ToSQL()
}

func insertHvdcLinesQuery(id uuid.UUID, records []snapshot.HvdcLine) (string, []any, error) {
	rows := make([]any, 0, len(records))
	for i, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return "", nil, fmt.Errorf("marshal hvdc line %q: %w", rec.ID, err)
		}
		rows = append(rows, goqu.Record{colNetworkUUID: id.String(), colPosition: i, colID: rec.ID, colData: string(data)})
	}
	return dialect.Insert(tableHvdcLine).Rows(rows...).Prepared(true).ToSQL()
}

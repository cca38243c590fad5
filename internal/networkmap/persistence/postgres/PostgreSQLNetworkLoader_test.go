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
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gridsuite/network-map-go/internal/common"
	nmerrors "github.com/gridsuite/network-map-go/internal/networkmap/errors"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology/topologytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockLoader(t *testing.T) (*PostgreSQLNetworkLoader, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgreSQLNetworkLoaderFromDB(db), mock
}

func TestQueryBuilders(t *testing.T) {
	t.Parallel()
	id := topologytest.NetworkUUID

	query, args, err := countNetworkQuery(id)
	require.NoError(t, err)
	assert.Contains(t, query, `FROM "network"`)
	assert.Contains(t, query, `"uuid" = $1`)
	assert.Equal(t, []any{id.String()}, args)

	query, args, err = selectSubstationsQuery(id, []string{"P1", "P2"})
	require.NoError(t, err)
	assert.Contains(t, query, `SELECT "data" FROM "substation"`)
	assert.Contains(t, query, `"id" IN ($2, $3)`)
	assert.Contains(t, query, `ORDER BY "position" ASC`)
	assert.Equal(t, []any{id.String(), "P1", "P2"}, args)

	query, _, err = selectSubstationsQuery(id, nil)
	require.NoError(t, err)
	assert.NotContains(t, query, `"id" IN`)

	query, args, err = selectEquipmentQuery(id, []string{"VLGEN"}, []topology.Kind{topology.KindLine, topology.KindGenerator})
	require.NoError(t, err)
	assert.Contains(t, query, `FROM "equipment"`)
	assert.Contains(t, query, `"voltage_level_ids" && $2`)
	assert.Contains(t, query, `"type" IN ($3, $4)`)
	require.Len(t, args, 4)
	assert.Equal(t, "LINE", args[2])

	query, args, err = selectHvdcLinesQuery(id, []string{"HVDC1"})
	require.NoError(t, err)
	assert.Contains(t, query, `FROM "hvdc_line"`)
	assert.Equal(t, []any{id.String(), "HVDC1"}, args)
}

func TestNetworkExists(t *testing.T) {
	t.Parallel()
	loader, mock := newMockLoader(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM .*network`).
		WithArgs(topologytest.NetworkUUID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM .*network`).
		WithArgs(topologytest.UnknownNetworkUUID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := loader.NetworkExists(context.Background(), topologytest.NetworkUUID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = loader.NetworkExists(context.Background(), topologytest.UnknownNetworkUUID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLoadSubstationsDecodesRows(t *testing.T) {
	t.Parallel()
	loader, mock := newMockLoader(t)

	mock.ExpectQuery(`SELECT .*data.* FROM .*substation.*ORDER BY .*position`).
		WithArgs(topologytest.NetworkUUID.String(), "P1").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).
			AddRow([]byte(`{"id":"P1","country":"FR","voltageLevels":[{"id":"VLGEN","nominalV":24}]}`)))

	subs, err := loader.LoadSubstations(context.Background(), topologytest.NetworkUUID, []string{"P1"})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "FR", subs[0].Country)
	assert.Equal(t, "VLGEN", subs[0].VoltageLevels[0].ID)
}

func TestEmptyFiltersSkipTheDatabase(t *testing.T) {
	t.Parallel()
	loader, _ := newMockLoader(t)
	ctx := context.Background()

	subs, err := loader.LoadSubstations(ctx, topologytest.NetworkUUID, []string{})
	require.NoError(t, err)
	assert.NotNil(t, subs)
	assert.Empty(t, subs)

	equipment, err := loader.LoadEquipment(ctx, topologytest.NetworkUUID, []string{}, nil)
	require.NoError(t, err)
	assert.Empty(t, equipment)

	equipment, err = loader.LoadEquipment(ctx, topologytest.NetworkUUID, nil, []topology.Kind{})
	require.NoError(t, err)
	assert.Empty(t, equipment)

	lines, err := loader.LoadHvdcLines(ctx, topologytest.NetworkUUID, []string{})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLoadEquipmentByVoltageLevel(t *testing.T) {
	t.Parallel()
	loader, mock := newMockLoader(t)

	mock.ExpectQuery(`SELECT .*data.* FROM .*equipment.*voltage_level_ids.* && .*ORDER BY .*position`).
		WithArgs(topologytest.NetworkUUID.String(), sqlmock.AnyArg(), "LINE").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).
			AddRow([]byte(`{"type":"LINE","id":"LINE3","sides":[{"voltageLevelId":"VLGEN","connected":true},{"voltageLevelId":"VLGEN3","connected":true}]}`)))

	equipment, err := loader.LoadEquipment(context.Background(), topologytest.NetworkUUID, []string{"VLGEN"}, []topology.Kind{topology.KindLine})
	require.NoError(t, err)
	require.Len(t, equipment, 1)
	assert.Equal(t, []string{"VLGEN", "VLGEN3"}, equipment[0].VoltageLevelIDs())
}

func TestLoadReportsCorruptPayload(t *testing.T) {
	t.Parallel()
	loader, mock := newMockLoader(t)

	mock.ExpectQuery(`FROM .*hvdc_line`).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(`{"id":`)))

	_, err := loader.LoadHvdcLines(context.Background(), topologytest.NetworkUUID, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, nmerrors.ErrCorruptNetwork))
	assert.Contains(t, err.Error(), "NMPG-LOADHVDC-DECODE")
}

func TestLoadReportsQueryFailure(t *testing.T) {
	t.Parallel()
	loader, mock := newMockLoader(t)

	mock.ExpectQuery(`FROM .*equipment`).WillReturnError(errors.New("connection reset"))

	_, err := loader.LoadEquipment(context.Background(), topologytest.NetworkUUID, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, nmerrors.ErrStoreUnavailable))
	assert.True(t, common.IsInternalServerError(err))
	assert.Contains(t, err.Error(), "NMPG-LOADEQUIP-EXECQUERY")
}

func TestLoadPassesCancellationThrough(t *testing.T) {
	t.Parallel()
	loader, mock := newMockLoader(t)

	mock.ExpectQuery(`FROM .*substation`).WillReturnError(context.Canceled)

	_, err := loader.LoadSubstations(context.Background(), topologytest.NetworkUUID, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, nmerrors.ErrStoreUnavailable))
}

func TestPutNetworkReplacesInOneTransaction(t *testing.T) {
	t.Parallel()
	loader, mock := newMockLoader(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM .*network`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO .*network`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO .*substation`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO .*equipment`).WillReturnResult(sqlmock.NewResult(0, 20))
	mock.ExpectExec(`INSERT INTO .*hvdc_line`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, loader.PutNetwork(context.Background(), topologytest.EurostagDocument(t)))
}

func TestPutNetworkRollsBackOnFailure(t *testing.T) {
	t.Parallel()
	loader, mock := newMockLoader(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM .*network`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO .*network`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := loader.PutNetwork(context.Background(), topologytest.EurostagDocument(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NMPG-PUTNET-EXECQUERY")
}

func TestPutNetworkRejectsInvalidDocument(t *testing.T) {
	t.Parallel()
	loader, _ := newMockLoader(t)

	doc := topologytest.EurostagDocument(t)
	doc.HvdcLines[0].ConverterStationID2 = doc.HvdcLines[0].ConverterStationID1

	err := loader.PutNetwork(context.Background(), doc)
	assert.True(t, errors.Is(err, nmerrors.ErrCorruptNetwork))
}

func TestDeleteNetwork(t *testing.T) {
	t.Parallel()
	loader, mock := newMockLoader(t)

	mock.ExpectExec(`DELETE FROM .*network`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM .*network`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, loader.DeleteNetwork(context.Background(), topologytest.NetworkUUID))
	err := loader.DeleteNetwork(context.Background(), topologytest.NetworkUUID)
	assert.True(t, errors.Is(err, persistence.ErrNetworkNotFound))
}

func TestLoaderStoreOverPostgres(t *testing.T) {
	t.Parallel()
	loader, mock := newMockLoader(t)
	store := persistence.NewLoaderStore(loader)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM .*network`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := store.GetNetwork(context.Background(), topologytest.NetworkUUID, persistence.None)
	assert.True(t, errors.Is(err, persistence.ErrNetworkNotFound))
}

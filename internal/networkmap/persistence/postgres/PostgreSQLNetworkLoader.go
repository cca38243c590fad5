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

// Package postgres reads and writes the network map read model in
// PostgreSQL. Record payloads are stored as jsonb next to the columns used
// for filtering, so a lazy network query touches only the rows of the voltage
// levels it visits.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gridsuite/network-map-go/internal/common"
	nmerrors "github.com/gridsuite/network-map-go/internal/networkmap/errors"
	"github.com/gridsuite/network-map-go/internal/networkmap/logger"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/snapshot"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL Treiber
)

// PostgreSQLNetworkLoader implements persistence.Loader and persistence.Writer.
type PostgreSQLNetworkLoader struct {
	db *sql.DB
}

// NewPostgreSQLNetworkLoader connects to the database, applies schemaFile when
// given and tunes the connection pool. Zero pool settings keep the defaults of
// common.InitializeDatabase.
func NewPostgreSQLNetworkLoader(dsn string, maxOpenConnections int, maxIdleConnections int, connMaxLifetimeMinutes int, schemaFile string) (*PostgreSQLNetworkLoader, error) {
	db, err := common.InitializeDatabase(dsn, schemaFile)
	if err != nil {
		return nil, fmt.Errorf("NMPG-NEWLOADER-INITDB %w", err)
	}
	if maxOpenConnections > 0 {
		db.SetMaxOpenConns(maxOpenConnections)
	}
	if maxIdleConnections > 0 {
		db.SetMaxIdleConns(maxIdleConnections)
	}
	if connMaxLifetimeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(connMaxLifetimeMinutes) * time.Minute)
	}
	return NewPostgreSQLNetworkLoaderFromDB(db), nil
}

// NewPostgreSQLNetworkLoaderFromDB wraps an open connection pool.
func NewPostgreSQLNetworkLoaderFromDB(db *sql.DB) *PostgreSQLNetworkLoader {
	return &PostgreSQLNetworkLoader{db: db}
}

// Close releases the connection pool.
func (p *PostgreSQLNetworkLoader) Close() error {
	return p.db.Close()
}

// NetworkExists implements persistence.Loader.
func (p *PostgreSQLNetworkLoader) NetworkExists(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := countNetworkQuery(id)
	if err != nil {
		return false, fmt.Errorf("NMPG-EXISTS-BUILDSQL failed to build SQL query: %w", err)
	}
	var count int
	if err := p.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, unavailable("NMPG-EXISTS-EXECQUERY", err)
	}
	return count > 0, nil
}

// LoadSubstations implements persistence.Loader.
func (p *PostgreSQLNetworkLoader) LoadSubstations(ctx context.Context, id uuid.UUID, substationIDs []string) ([]snapshot.Substation, error) {
	if substationIDs != nil && len(substationIDs) == 0 {
		return []snapshot.Substation{}, nil
	}
	query, args, err := selectSubstationsQuery(id, substationIDs)
	if err != nil {
		return nil, fmt.Errorf("NMPG-LOADSUBST-BUILDSQL failed to build SQL query: %w", err)
	}
	return queryRecords[snapshot.Substation](ctx, p.db, id, "NMPG-LOADSUBST", query, args)
}

// LoadEquipment implements persistence.Loader.
func (p *PostgreSQLNetworkLoader) LoadEquipment(ctx context.Context, id uuid.UUID, voltageLevelIDs []string, kinds []topology.Kind) ([]snapshot.Equipment, error) {
	if (voltageLevelIDs != nil && len(voltageLevelIDs) == 0) || (kinds != nil && len(kinds) == 0) {
		return []snapshot.Equipment{}, nil
	}
	query, args, err := selectEquipmentQuery(id, voltageLevelIDs, kinds)
	if err != nil {
		return nil, fmt.Errorf("NMPG-LOADEQUIP-BUILDSQL failed to build SQL query: %w", err)
	}
	return queryRecords[snapshot.Equipment](ctx, p.db, id, "NMPG-LOADEQUIP", query, args)
}

// LoadHvdcLines implements persistence.Loader.
func (p *PostgreSQLNetworkLoader) LoadHvdcLines(ctx context.Context, id uuid.UUID, hvdcLineIDs []string) ([]snapshot.HvdcLine, error) {
	if hvdcLineIDs != nil && len(hvdcLineIDs) == 0 {
		return []snapshot.HvdcLine{}, nil
	}
	query, args, err := selectHvdcLinesQuery(id, hvdcLineIDs)
	if err != nil {
		return nil, fmt.Errorf("NMPG-LOADHVDC-BUILDSQL failed to build SQL query: %w", err)
	}
	return queryRecords[snapshot.HvdcLine](ctx, p.db, id, "NMPG-LOADHVDC", query, args)
}

// PutNetwork implements persistence.Writer. The network is replaced as a
// whole inside one transaction.
func (p *PostgreSQLNetworkLoader) PutNetwork(ctx context.Context, doc *snapshot.Document) error {
	if _, err := snapshot.BuildGraph(doc); err != nil {
		return persistence.Corrupt(doc.ID, err)
	}
	statements := []func() (string, []any, error){
		func() (string, []any, error) { return deleteNetworkQuery(doc.ID) },
		func() (string, []any, error) { return insertNetworkQuery(doc.ID) },
	}
	if len(doc.Substations) > 0 {
		statements = append(statements, func() (string, []any, error) { return insertSubstationsQuery(doc.ID, doc.Substations) })
	}
	if len(doc.Equipment) > 0 {
		statements = append(statements, func() (string, []any, error) { return insertEquipmentQuery(doc.ID, doc.Equipment) })
	}
	if len(doc.HvdcLines) > 0 {
		statements = append(statements, func() (string, []any, error) { return insertHvdcLinesQuery(doc.ID, doc.HvdcLines) })
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("NMPG-PUTNET-BEGINTX", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			logger.LogError("NMPG-PUTNET-ROLLBACK failed to roll back transaction", rollbackErr)
		}
	}()

	for _, build := range statements {
		query, args, err := build()
		if err != nil {
			return fmt.Errorf("NMPG-PUTNET-BUILDSQL failed to build SQL query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return unavailable("NMPG-PUTNET-EXECQUERY", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return unavailable("NMPG-PUTNET-COMMIT", err)
	}
	return nil
}

// DeleteNetwork implements persistence.Writer. Rows of the network are
// removed by cascade.
func (p *PostgreSQLNetworkLoader) DeleteNetwork(ctx context.Context, id uuid.UUID) error {
	query, args, err := deleteNetworkQuery(id)
	if err != nil {
		return fmt.Errorf("NMPG-DELNET-BUILDSQL failed to build SQL query: %w", err)
	}
	res, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		return unavailable("NMPG-DELNET-EXECQUERY", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return unavailable("NMPG-DELNET-ROWSAFFECTED", err)
	}
	if affected == 0 {
		return persistence.NotFound(id)
	}
	return nil
}

// queryRecords runs query and decodes the single jsonb column of each row.
func queryRecords[T any](ctx context.Context, db *sql.DB, id uuid.UUID, code string, query string, args []any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable(code+"-EXECQUERY", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			logger.LogError(code+"-CLOSEROWS failed to close rows", closeErr)
		}
	}()

	out := make([]T, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, unavailable(code+"-SCANROW", err)
		}
		var rec T
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, persistence.Corrupt(id, fmt.Errorf("%s-DECODE %w", code, err))
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(code+"-ITERROWS", err)
	}
	return out, nil
}

// unavailable logs err under code and wraps it with ErrStoreUnavailable.
// Context cancellation is passed through unchanged.
func unavailable(code string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	logger.LogError(code, err)
	return fmt.Errorf("%w: %s: %w", nmerrors.ErrStoreUnavailable, code, err)
}

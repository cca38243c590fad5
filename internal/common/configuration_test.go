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

package common

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 5008, cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.ContextPath)
	assert.Equal(t, []string{"GET", "OPTIONS"}, cfg.CorsConfig.AllowedMethods)
	assert.Equal(t, "inmemory", cfg.Store.Backend)
	assert.Equal(t, "networks", cfg.Store.SnapshotDir)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Swagger.Enabled)
}

func TestLoadConfigFileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 6000
  contextPath: /network-map
store:
  backend: mongodb
mongodb:
  database: maps
`), 0o600))
	t.Setenv("STORE_BACKEND", "s3")
	t.Setenv("S3_BUCKET", "networks")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, "/network-map", cfg.Server.ContextPath)
	assert.Equal(t, "maps", cfg.MongoDB.Database)
	assert.Equal(t, "s3", cfg.Store.Backend)
	assert.Equal(t, "networks", cfg.S3.Bucket)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestPostgresDSN(t *testing.T) {
	t.Parallel()
	p := PostgresConfig{Host: "db", User: "map user", Password: "p@ss", DBName: "networkmap"}
	assert.Equal(t, "postgres://map%20user:p%40ss@db:5432/networkmap?sslmode=disable", p.DSN())

	p.Port = 6543
	p.SSLMode = "require"
	assert.Equal(t, "postgres://map%20user:p%40ss@db:6543/networkmap?sslmode=require", p.DSN())
}

func TestAddCors(t *testing.T) {
	t.Parallel()
	r := chi.NewRouter()
	AddCors(r, &Config{CorsConfig: CorsConfig{
		AllowedOrigins: []string{"https://grid.example"},
		AllowedMethods: []string{"GET"},
	}})
	r.Get("/x", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://grid.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://grid.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

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
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	for _, contextPath := range []string{"", "/network-map", "/network-map/"} {
		r := chi.NewRouter()
		AddHealthEndpoint(r, &Config{Server: ServerConfig{ContextPath: contextPath}})

		rec := httptest.NewRecorder()
		target := NormalizeBasePath(contextPath)
		if target == "/" {
			target = ""
		}
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target+"/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code, contextPath)
		assert.JSONEq(t, `{"status":"UP"}`, rec.Body.String(), contextPath)
	}
}

func TestNormalizeBasePath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/", NormalizeBasePath(""))
	assert.Equal(t, "/", NormalizeBasePath("/"))
	assert.Equal(t, "/api", NormalizeBasePath("api"))
	assert.Equal(t, "/api", NormalizeBasePath("/api/"))
}

const testSpec = `openapi: 3.0.3
info:
  title: Network Map API
  contact:
    name: Someone
servers:
- url: 'http://localhost:5008'
  description: Local server
paths: {}
`

func TestSwaggerUIFromFS(t *testing.T) {
	t.Parallel()
	specFS := fstest.MapFS{"openapi.yaml": {Data: []byte(testSpec)}}
	cfg := &Config{
		Server:  ServerConfig{Host: "0.0.0.0", Port: 5008, ContextPath: "/network-map"},
		Swagger: SwaggerConfig{ContactName: "Grid team", ContactEmail: "grid@example.org"},
	}
	r := chi.NewRouter()
	require.NoError(t, AddSwaggerUIFromFS(r, specFS, "openapi.yaml", "/swagger", "/api-docs/openapi.yaml", cfg))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/network-map/api-docs/openapi.yaml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "url: 'http://localhost:5008/network-map'")
	assert.Contains(t, body, "name: Grid team")
	assert.Contains(t, body, "email: grid@example.org")
	assert.NotContains(t, body, "Someone")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/network-map/swagger/index.html", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/network-map/api-docs/openapi.yaml")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/network-map", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/network-map/swagger/index.html", rec.Header().Get("Location"))
}

func TestSwaggerUIMissingSpec(t *testing.T) {
	t.Parallel()
	err := AddSwaggerUIFromFS(chi.NewRouter(), fstest.MapFS{}, "openapi.yaml", "/swagger", "/api-docs/openapi.yaml", nil)
	assert.Error(t, err)
}

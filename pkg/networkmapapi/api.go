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

// Package networkmapapi exposes the network map queries over HTTP.
package networkmapapi

import (
	"context"
	"embed"
	"errors"
	"net/http"

	"github.com/gridsuite/network-map-go/internal/common/model"
)

// OpenAPI holds the OpenAPI document of the network map API.
//
//go:embed openapi.yaml
var OpenAPI embed.FS

// OpenAPIFile is the name of the document inside OpenAPI.
const OpenAPIFile = "openapi.yaml"

// NetworkMapAPIRouter defines the required methods for binding the api requests to a responses for the NetworkMapAPI
// The NetworkMapAPIRouter implementation should parse necessary information from the http request,
// pass the data to a NetworkMapAPIServicer to perform the required actions, then write the service results to the http response.
type NetworkMapAPIRouter interface {
	GetSubstations(http.ResponseWriter, *http.Request)
	GetLines(http.ResponseWriter, *http.Request)
	GetTwoWindingsTransformers(http.ResponseWriter, *http.Request)
	GetThreeWindingsTransformers(http.ResponseWriter, *http.Request)
	GetGenerators(http.ResponseWriter, *http.Request)
	GetBatteries(http.ResponseWriter, *http.Request)
	GetDanglingLines(http.ResponseWriter, *http.Request)
	GetHvdcLines(http.ResponseWriter, *http.Request)
	GetLccConverterStations(http.ResponseWriter, *http.Request)
	GetVscConverterStations(http.ResponseWriter, *http.Request)
	GetLoads(http.ResponseWriter, *http.Request)
	GetShuntCompensators(http.ResponseWriter, *http.Request)
	GetStaticVarCompensators(http.ResponseWriter, *http.Request)
	GetAll(http.ResponseWriter, *http.Request)
}

// NetworkMapAPIServicer defines the api actions for the NetworkMapAPI service
// This interface intended to stay up to date with the openapi yaml used to generate it,
// while the service implementation can be ignored with the .openapi-generator-ignore file
// and updated with the logic required for the API.
type NetworkMapAPIServicer interface {
	GetSubstations(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)
	GetLines(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)
	GetTwoWindingsTransformers(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)
	GetThreeWindingsTransformers(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)
	GetGenerators(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)
	GetBatteries(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)
	GetDanglingLines(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)
	GetHvdcLines(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)
	GetLccConverterStations(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)
	GetVscConverterStations(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)
	GetLoads(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)
	GetShuntCompensators(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)
	GetStaticVarCompensators(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)
	GetAll(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)
}

var errRequired = errors.New("required parameter is missing")

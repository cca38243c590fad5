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

package networkmapapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gridsuite/network-map-go/internal/common/model"
)

// BasePath prefixes every network map route.
const BasePath = "/v1"

const (
	networkUUIDParam  = "networkUuid"
	substationIDParam = "substationId"
)

// NetworkMapAPIController binds http requests to an api service and writes the service results to the http response
type NetworkMapAPIController struct {
	service      NetworkMapAPIServicer
	errorHandler model.ErrorHandler
}

// NetworkMapAPIOption for how the controller is set up.
type NetworkMapAPIOption func(*NetworkMapAPIController)

// WithNetworkMapAPIErrorHandler inject ErrorHandler into controller
func WithNetworkMapAPIErrorHandler(h model.ErrorHandler) NetworkMapAPIOption {
	return func(c *NetworkMapAPIController) {
		c.errorHandler = h
	}
}

// NewNetworkMapAPIController creates a default api controller
func NewNetworkMapAPIController(s NetworkMapAPIServicer, opts ...NetworkMapAPIOption) *NetworkMapAPIController {
	controller := &NetworkMapAPIController{
		service:      s,
		errorHandler: model.DefaultErrorHandler,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns all the api routes for the NetworkMapAPIController
func (c *NetworkMapAPIController) Routes() model.Routes {
	routes := model.Routes{}
	for _, route := range c.OrderedRoutes() {
		routes[route.Name] = route
	}
	return routes
}

// OrderedRoutes returns all the api routes in a deterministic order for the NetworkMapAPIController
func (c *NetworkMapAPIController) OrderedRoutes() []model.Route {
	return []model.Route{
		getRoute("GetSubstations", "substations", c.GetSubstations),
		getRoute("GetLines", "lines", c.GetLines),
		getRoute("GetGenerators", "generators", c.GetGenerators),
		getRoute("GetTwoWindingsTransformers", "2-windings-transformers", c.GetTwoWindingsTransformers),
		getRoute("GetThreeWindingsTransformers", "3-windings-transformers", c.GetThreeWindingsTransformers),
		getRoute("GetBatteries", "batteries", c.GetBatteries),
		getRoute("GetDanglingLines", "dangling-lines", c.GetDanglingLines),
		getRoute("GetHvdcLines", "hvdc-lines", c.GetHvdcLines),
		getRoute("GetLccConverterStations", "lcc-converter-stations", c.GetLccConverterStations),
		getRoute("GetVscConverterStations", "vsc-converter-stations", c.GetVscConverterStations),
		getRoute("GetLoads", "loads", c.GetLoads),
		getRoute("GetShuntCompensators", "shunt-compensators", c.GetShuntCompensators),
		getRoute("GetStaticVarCompensators", "static-var-compensators", c.GetStaticVarCompensators),
		getRoute("GetAll", "all", c.GetAll),
	}
}

func getRoute(name string, collection string, handler http.HandlerFunc) model.Route {
	return model.Route{
		Name:        name,
		Method:      strings.ToUpper("Get"),
		Pattern:     BasePath + "/" + collection + "/{" + networkUUIDParam + "}",
		HandlerFunc: handler,
	}
}

// GetSubstations - Returns the substations of a network
func (c *NetworkMapAPIController) GetSubstations(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.service.GetSubstations)
}

// GetLines - Returns the lines of a network
func (c *NetworkMapAPIController) GetLines(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.service.GetLines)
}

// GetTwoWindingsTransformers - Returns the two windings transformers of a network
func (c *NetworkMapAPIController) GetTwoWindingsTransformers(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.service.GetTwoWindingsTransformers)
}

// GetThreeWindingsTransformers - Returns the three windings transformers of a network
func (c *NetworkMapAPIController) GetThreeWindingsTransformers(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.service.GetThreeWindingsTransformers)
}

// GetGenerators - Returns the generators of a network
func (c *NetworkMapAPIController) GetGenerators(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.service.GetGenerators)
}

// GetBatteries - Returns the batteries of a network
func (c *NetworkMapAPIController) GetBatteries(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.service.GetBatteries)
}

// GetDanglingLines - Returns the dangling lines of a network
func (c *NetworkMapAPIController) GetDanglingLines(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.service.GetDanglingLines)
}

// GetHvdcLines - Returns the HVDC lines of a network
func (c *NetworkMapAPIController) GetHvdcLines(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.service.GetHvdcLines)
}

// GetLccConverterStations - Returns the LCC converter stations of a network
func (c *NetworkMapAPIController) GetLccConverterStations(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.service.GetLccConverterStations)
}

// GetVscConverterStations - Returns the VSC converter stations of a network
func (c *NetworkMapAPIController) GetVscConverterStations(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.service.GetVscConverterStations)
}

// GetLoads - Returns the loads of a network
func (c *NetworkMapAPIController) GetLoads(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.service.GetLoads)
}

// GetShuntCompensators - Returns the shunt compensators of a network
func (c *NetworkMapAPIController) GetShuntCompensators(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.service.GetShuntCompensators)
}

// GetStaticVarCompensators - Returns the static var compensators of a network
func (c *NetworkMapAPIController) GetStaticVarCompensators(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.service.GetStaticVarCompensators)
}

// GetAll - Returns every collection of a network
func (c *NetworkMapAPIController) GetAll(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.service.GetAll)
}

type serviceCall func(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error)

// handle reads the network id and the repeated substationId query parameter.
// An absent parameter is passed on as a nil scope.
func (c *NetworkMapAPIController) handle(w http.ResponseWriter, r *http.Request, call serviceCall) {
	query, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		c.errorHandler(w, r, &model.ParsingError{Err: err}, nil)
		return
	}
	networkUUIDValue := chi.URLParam(r, networkUUIDParam)
	if networkUUIDValue == "" {
		c.errorHandler(w, r, &model.ParsingError{Param: networkUUIDParam, Err: errRequired}, nil)
		return
	}
	var substationIDs []string
	if query.Has(substationIDParam) {
		substationIDs = query[substationIDParam]
	}

	result, err := call(r.Context(), networkUUIDValue, substationIDs)
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}

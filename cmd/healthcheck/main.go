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

// Package main provides the health check used by the network map container
// image. It exits 0 when the service answers {"status":"UP"} on its health
// endpoint and 1 otherwise.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultPort    = "5008"
	defaultTimeout = 5 * time.Second
	maxBodyBytes   = 4 << 10
)

type checkOptions struct {
	url     string
	quiet   bool
	timeout time.Duration
}

type healthStatus struct {
	Status string `json:"status"`
}

func main() {
	options, err := parseOptions(os.Args[1:], os.Getenv)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), options.timeout)
	defer cancel()
	if err := runCheck(ctx, http.DefaultClient, options.url); err != nil {
		if !options.quiet {
			_, _ = fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}

// parseOptions reads the flags. Without -url the target is derived from the
// SERVER_PORT and SERVER_CONTEXTPATH variables the service itself reads.
func parseOptions(args []string, getenv func(string) string) (checkOptions, error) {
	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	options := checkOptions{}
	fs.StringVar(&options.url, "url", "", "health endpoint to check")
	fs.BoolVar(&options.quiet, "quiet", false, "do not report failures on stderr")
	fs.DurationVar(&options.timeout, "timeout", defaultTimeout, "check timeout")
	if err := fs.Parse(args); err != nil {
		return options, fmt.Errorf("HEALTHCHECK-PARSE-FLAGS: %w", err)
	}
	if options.timeout <= 0 {
		return options, errors.New("HEALTHCHECK-PARSE-INVALIDTIMEOUT")
	}
	if fs.NArg() > 0 {
		return options, fmt.Errorf("HEALTHCHECK-PARSE-UNEXPECTEDARGS: %s", strings.Join(fs.Args(), " "))
	}
	if options.url == "" {
		options.url = defaultHealthURL(getenv)
	}
	return options, nil
}

func defaultHealthURL(getenv func(string) string) string {
	port := getenv("SERVER_PORT")
	if port == "" {
		port = defaultPort
	}
	contextPath := strings.TrimSuffix(getenv("SERVER_CONTEXTPATH"), "/")
	if contextPath != "" && !strings.HasPrefix(contextPath, "/") {
		contextPath = "/" + contextPath
	}
	return fmt.Sprintf("http://127.0.0.1:%s%s/health", port, contextPath)
}

func runCheck(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("HEALTHCHECK-RUN-BADURL: %w", err)
	}
	response, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("HEALTHCHECK-RUN-REQUESTFAILED: %w", err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("HEALTHCHECK-RUN-UNHEALTHYSTATUS: %d", response.StatusCode)
	}

	var health healthStatus
	if err := json.NewDecoder(io.LimitReader(response.Body, maxBodyBytes)).Decode(&health); err != nil {
		return fmt.Errorf("HEALTHCHECK-RUN-BADBODY: %w", err)
	}
	if health.Status != "UP" {
		return fmt.Errorf("HEALTHCHECK-RUN-NOTUP: %q", health.Status)
	}
	return nil
}

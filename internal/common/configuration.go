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

// Package common provides configuration management, database initialization,
// error helpers and HTTP endpoint utilities shared by the network map service.
// It includes support for YAML configuration files, environment variable
// overrides, CORS setup, health endpoints and Swagger UI.
// nolint:all
package common

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
)

// PrintSplash displays the service banner during startup.
func PrintSplash() {
	log.Printf(`
	 _   _      _                      _      __  __
	| \ | | ___| |___      _____  _ __| | __ |  \/  | __ _ _ __
	|  \| |/ _ \ __\ \ /\ / / _ \| '__| |/ / | |\/| |/ _' | '_ \
	| |\  |  __/ |_ \ V  V / (_) | |  |   <  | |  | | (_| | |_) |
	|_| \_|\___|\__| \_/\_/ \___/|_|  |_|\_\ |_|  |_|\__,_| .__/
	                                                      |_|
	`)
}

// Config represents the complete configuration structure of the network map
// service. Every key can be overridden through the environment, e.g.
// STORE_BACKEND=postgres or SERVER_PORT=8080.
type Config struct {
	Server     ServerConfig   `mapstructure:"server" json:"server"`
	CorsConfig CorsConfig     `mapstructure:"cors" json:"cors"`
	Logging    LoggingConfig  `mapstructure:"logging" json:"logging"`
	Metrics    MetricsConfig  `mapstructure:"metrics" json:"metrics"`
	Tracing    TracingConfig  `mapstructure:"tracing" json:"tracing"`
	Swagger    SwaggerConfig  `mapstructure:"swagger" json:"swagger"`
	Store      StoreConfig    `mapstructure:"store" json:"store"`
	Postgres   PostgresConfig `mapstructure:"postgres" json:"postgres"`
	MongoDB    MongoDBConfig  `mapstructure:"mongodb" json:"mongodb"`
	S3         S3Config       `mapstructure:"s3" json:"s3"`
}

// ServerConfig contains HTTP server configuration parameters.
type ServerConfig struct {
	Host               string `mapstructure:"host" json:"host"`                             // Listen address (default: 0.0.0.0)
	Port               int    `mapstructure:"port" json:"port"`                             // HTTP server port (default: 5008)
	ContextPath        string `mapstructure:"contextPath" json:"contextPath"`               // Base path for all endpoints
	ReadTimeoutSeconds int    `mapstructure:"readTimeoutSeconds" json:"readTimeoutSeconds"` // Request read timeout
}

// CorsConfig contains Cross-Origin Resource Sharing (CORS) policy settings.
type CorsConfig struct {
	AllowedOrigins   []string `mapstructure:"allowedOrigins" json:"allowedOrigins"`     // Allowed origin domains
	AllowedMethods   []string `mapstructure:"allowedMethods" json:"allowedMethods"`     // Allowed HTTP methods
	AllowedHeaders   []string `mapstructure:"allowedHeaders" json:"allowedHeaders"`     // Allowed request headers
	AllowCredentials bool     `mapstructure:"allowCredentials" json:"allowCredentials"` // Allow credentials in requests
}

// LoggingConfig selects the zap logger.
type LoggingConfig struct {
	Level       string `mapstructure:"level" json:"level"`
	Development bool   `mapstructure:"development" json:"development"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" json:"enabled"`
	Path    string `mapstructure:"path" json:"path"`
}

// TracingConfig controls the OpenTelemetry HTTP middleware.
type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled" json:"enabled"`
	ServiceName string `mapstructure:"serviceName" json:"serviceName"`
}

// SwaggerConfig controls the Swagger UI and the contact block of the served
// OpenAPI document.
type SwaggerConfig struct {
	Enabled      bool   `mapstructure:"enabled" json:"enabled"`
	ContactName  string `mapstructure:"contactName" json:"contactName"`
	ContactEmail string `mapstructure:"contactEmail" json:"contactEmail"`
	ContactURL   string `mapstructure:"contactUrl" json:"contactUrl"`
}

// StoreConfig selects the network store backend.
type StoreConfig struct {
	Backend     string `mapstructure:"backend" json:"backend"`         // inmemory, postgres, mongodb or s3
	SnapshotDir string `mapstructure:"snapshotDir" json:"snapshotDir"` // Directory of network documents seeded at startup
}

// PostgresConfig contains PostgreSQL database connection parameters.
// It includes connection pooling settings for optimal performance.
type PostgresConfig struct {
	Host                   string `mapstructure:"host" json:"host"`                                     // Database host address
	Port                   int    `mapstructure:"port" json:"port"`                                     // Database port (default: 5432)
	User                   string `mapstructure:"user" json:"user"`                                     // Database username
	Password               string `mapstructure:"password" json:"password"`                             // Database password
	DBName                 string `mapstructure:"dbname" json:"dbname"`                                 // Database name
	SSLMode                string `mapstructure:"sslmode" json:"sslmode"`                               // lib/pq sslmode
	MaxOpenConnections     int    `mapstructure:"maxOpenConnections" json:"maxOpenConnections"`         // Maximum open connections
	MaxIdleConnections     int    `mapstructure:"maxIdleConnections" json:"maxIdleConnections"`         // Maximum idle connections
	ConnMaxLifetimeMinutes int    `mapstructure:"connMaxLifetimeMinutes" json:"connMaxLifetimeMinutes"` // Connection lifetime in minutes
	SchemaFile             string `mapstructure:"schemaFile" json:"schemaFile"`                         // Schema applied at startup
}

// DSN returns the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	port := p.Port
	if port == 0 {
		port = 5432
	}
	sslMode := p.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, port),
		Path:     "/" + p.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return dsn.String()
}

// MongoDBConfig contains the MongoDB connection parameters.
type MongoDBConfig struct {
	URI                   string `mapstructure:"uri" json:"uri"`
	Database              string `mapstructure:"database" json:"database"`
	ConnectTimeoutSeconds int    `mapstructure:"connectTimeoutSeconds" json:"connectTimeoutSeconds"`
}

// S3Config locates the bucket holding network documents.
type S3Config struct {
	Bucket          string `mapstructure:"bucket" json:"bucket"`
	Prefix          string `mapstructure:"prefix" json:"prefix"`
	Region          string `mapstructure:"region" json:"region"`
	Endpoint        string `mapstructure:"endpoint" json:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId" json:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey" json:"secretAccessKey"`
	UsePathStyle    bool   `mapstructure:"usePathStyle" json:"usePathStyle"`
}

// LoadConfig loads the configuration from YAML files and environment variables.
//
// The function supports multiple configuration sources with the following precedence:
// 1. Environment variables (highest priority)
// 2. Configuration file (if provided)
// 3. Default values (lowest priority)
//
// Environment variables should use underscore notation (e.g., SERVER_PORT for server.port).
//
// Parameters:
//   - configPath: Path to the YAML configuration file. If empty, only environment
//     variables and defaults will be used.
//
// Returns:
//   - *Config: Loaded configuration structure
//   - error: Error if configuration loading fails
//
// Example:
//
//	config, err := LoadConfig("config/app.yaml")
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		log.Printf("📁 Loading config from file: %s", configPath)
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Println("📁 No config file provided - loading from environment variables only")
	}

	// Override config with environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	log.Println("✅ Configuration loaded successfully")
	PrintConfiguration(cfg)
	return cfg, nil
}

// setDefaults configures defaults that let the service run locally on the
// in-memory store without any configuration file.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5008)
	v.SetDefault("server.contextPath", "")
	v.SetDefault("server.readTimeoutSeconds", 30)

	// CORS defaults
	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"*"})
	v.SetDefault("cors.allowCredentials", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("tracing.enabled", true)
	v.SetDefault("tracing.serviceName", "networkmapservice")

	v.SetDefault("swagger.enabled", true)
	v.SetDefault("swagger.contactName", "")
	v.SetDefault("swagger.contactEmail", "")
	v.SetDefault("swagger.contactUrl", "")

	v.SetDefault("store.backend", "inmemory")
	v.SetDefault("store.snapshotDir", "networks")

	// PostgreSQL defaults
	v.SetDefault("postgres.host", "db")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "networkmap")
	v.SetDefault("postgres.password", "networkmap")
	v.SetDefault("postgres.dbname", "networkmap")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.maxOpenConnections", 50)
	v.SetDefault("postgres.maxIdleConnections", 50)
	v.SetDefault("postgres.connMaxLifetimeMinutes", 5)
	v.SetDefault("postgres.schemaFile", "")

	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "networkmap")
	v.SetDefault("mongodb.connectTimeoutSeconds", 10)

	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.prefix", "")
	v.SetDefault("s3.region", "eu-west-3")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.accessKeyId", "")
	v.SetDefault("s3.secretAccessKey", "")
	v.SetDefault("s3.usePathStyle", false)
}

// PrintConfiguration prints the current configuration to the console with sensitive data redacted.
//
// This function is useful for debugging and verifying configuration during startup.
// Sensitive information such as database credentials is masked to prevent accidental
// exposure in logs.
//
// Parameters:
//   - cfg: Configuration structure to print
//
// The output is formatted as pretty-printed JSON with the following redactions:
//   - Database host, username, and password are replaced with "****"
//   - The MongoDB URI and the S3 keys are replaced with "****"
//
// Example output:
//
//	{
//	  "server": {
//	    "port": 5008,
//	    "contextPath": "/api/v1"
//	  },
//	  "postgres": {
//	    "host": "****",
//	    "user": "****",
//	    "password": "****"
//	  }
//	}
func PrintConfiguration(cfg *Config) {
	// Create a copy of the config to avoid modifying the original
	cfgCopy := *cfg

	// Redact sensitive information if present in the Postgres configuration
	if cfg.Postgres.Host != "" {
		// Simple redaction that preserves the structure but hides credentials
		cfgCopy.Postgres.Host = "****"
		cfgCopy.Postgres.User = "****"
		cfgCopy.Postgres.Password = "****"
	}
	if cfg.MongoDB.URI != "" {
		cfgCopy.MongoDB.URI = "****"
	}
	if cfg.S3.SecretAccessKey != "" {
		cfgCopy.S3.AccessKeyID = "****"
		cfgCopy.S3.SecretAccessKey = "****"
	}

	// Convert to JSON for pretty printing
	configJSON, err := json.MarshalIndent(cfgCopy, "", "  ")
	if err != nil {
		log.Printf("Unable to marshal configuration to JSON: %v", err)
		return
	}

	log.Printf("📜 Loaded configuration:\n%s", string(configJSON))
}

// AddCors configures Cross-Origin Resource Sharing (CORS) middleware for the router.
//
// This function sets up CORS policies based on the provided configuration,
// enabling web applications from different domains to make requests to the API.
//
// Parameters:
//   - r: Chi router to configure with CORS middleware
//   - config: Configuration containing CORS policy settings
//
// The CORS configuration includes:
//   - Allowed origins (domains that can make requests)
//   - Allowed methods (HTTP methods permitted)
//   - Allowed headers (request headers permitted)
//   - Credentials support (whether to include cookies/auth headers)
//
// Example:
//
//	router := chi.NewRouter()
//	AddCors(router, config)
//	// Router now accepts cross-origin requests according to config
func AddCors(r *chi.Mux, config *Config) {
	c := cors.New(cors.Options{
		AllowedOrigins:   config.CorsConfig.AllowedOrigins,
		AllowedMethods:   config.CorsConfig.AllowedMethods,
		AllowedHeaders:   config.CorsConfig.AllowedHeaders,
		AllowCredentials: config.CorsConfig.AllowCredentials,
	})
	r.Use(c.Handler)
}

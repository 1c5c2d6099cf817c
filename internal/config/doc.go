// Package config provides configuration loading, merging, and validation
// facilities for the server and the cryptctl CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file
//  3. Environment variables
//  4. Command-line flags
//  5. JSON or YAML config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetCLIConfig] for the CLI.
package config

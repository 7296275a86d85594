// Package config loads typed configuration from the environment or a YAML
// file.
//
// Environment loading wraps github.com/joho/godotenv and
// github.com/caarlos0/env/v11: LoadEnv reads one or more .env files, Load
// parses the environment into a struct by its env tags and caches the result
// per type. LoadFile decodes a YAML file with gopkg.in/yaml.v3 instead and is
// not cached.
//
// A configuration type whose pointer implements Validator is validated after
// parsing; failures wrap ErrInvalidConfig.
//
// # Usage
//
//	var cfg docusign.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// or from a file:
//
//	var cfg docusign.Config
//	if err := config.LoadFile("docusign.yaml", &cfg); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile: a .env file could not be read.
//   - ErrReadingConfigFile / ErrParsingConfigFile: YAML file failures.
//   - ErrInvalidConfig: Validate rejected the parsed value.
//   - ErrNilPointer: nil pointer passed to a loader.
//
// # Testing Helpers
//
// ResetCache clears the cache between tests and ForceReloadConfig re-parses a
// single type after the environment changes.
package config

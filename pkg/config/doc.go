// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - the default `.env` file in the working directory is read once, if present;
//   - LoadEnv reads additional `.env` files on demand;
//   - Load parses the environment into any struct annotated with `env` tags;
//   - each configuration type (per variable prefix) is parsed once and cached
//     for the lifetime of the process, so concurrent callers observe the same
//     value.
//
// # Usage
//
//	type Snapshot struct {
//		OSVersion  string `env:"OS_VERSION,required"`
//		HardwareID string `env:"HARDWARE_ID"`
//	}
//
//	var s Snapshot
//	if err := config.Load(&s, config.WithPrefix("DEVICEKIT_")); err != nil {
//		return err
//	}
//
// MustLoad panics instead of returning an error. Reset clears the cache and is
// intended for tests that change the environment between loads.
package config

// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from an optional YAML file with viper, overridden by
// SCHOOLBOY_RSA_* environment variables and validated before use. The key size is
// a deployment parameter: it fixes the block size and the bound on key strings for
// every operation of a running process.
package config

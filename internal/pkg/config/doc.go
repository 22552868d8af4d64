// Package config defines validated settings structs for logging, database
// access and the remote store client, plus the viper-based loader for the
// REST service configuration.
package config

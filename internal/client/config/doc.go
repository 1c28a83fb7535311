// Package config loads runtime configuration for the SafeWalk terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the SafeWalk gRPC endpoint
//	-f string   path of the local state file (SQLite)
//	-t int      per-request timeout (seconds)
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// Durations accept strings like "5s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "state_file": "safewalk.db",
//	  "request_timeout": "5s",
//	  "online_check_interval": "3s"
//	}
//
// Keys missing from the file keep their previous values.
package config

// Package config loads runtime settings for strings: which allocator backs
// their blocks, whether allocator traffic is traced and in what format, and
// whether prometheus metrics are exported.
//
// Settings come from a TOML or YAML file, then BYTESTRING_* environment
// variables, then validation:
//
//	[allocator]
//	kind = "pool"
//	maxBytes = 67108864
//
//	[logging]
//	enabled = true
//	level = "debug"
//	format = "json"
//
//	[metrics]
//	enabled = true
//	namespace = "bytestring"
package config

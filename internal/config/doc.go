// Package config loads the optional checkenv configuration.
//
// Configuration never changes which attributes are reported or how they are
// formatted. It only tunes diagnostics and how the java runtime is found.
//
// # Search Path
//
//	$CHECKENV_CONFIG                   // exclusive when set
//	<UserConfigDir>/checkenv/config.toml
//	/etc/checkenv/config.toml
//
// The first existing file wins. A malformed file is skipped with a warning.
//
// # File Format
//
//	java          = "/usr/lib/jvm/java-21/bin/java"
//	probe_timeout = "5s"
//	log_format    = "json"
//	debug         = true
//
// # Environment Overrides
//
//	CHECKENV_DEBUG=1          // same as debug = true
//	CHECKENV_LOG_FORMAT=json  // same as log_format = "json"
package config

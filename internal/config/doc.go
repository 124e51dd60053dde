// Package config loads defaults for the appdirs CLI using Viper.
//
// The config file is a YAML file named config.yaml searched in the current
// directory and in the user config directory the library resolves for the
// tool itself (for example ~/.config/appdirs on Linux):
//
//	author: Acme
//	format: json
//	roaming: false
//
// Every key can also be set through an APPDIRS_* environment variable
// (APPDIRS_AUTHOR, APPDIRS_FORMAT, APPDIRS_ROAMING). Flags passed on the
// command line take precedence over both.
package config

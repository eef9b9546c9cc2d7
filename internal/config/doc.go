// Package config provides configuration management for reportgen.
package config

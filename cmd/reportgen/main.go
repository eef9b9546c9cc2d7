// Package main provides the entry point for the reportgen CLI.
//
// reportgen produces fixed-layout text reports for members, providers and
// a weekly summary of billed services, from records kept in SQLite or
// PostgreSQL.
//
// Usage:
//
//	reportgen import records.yaml
//	reportgen generate --type member --id 7
//	reportgen generate --type summary
//
// See --help for all available options.
package main

// main is the entry point for reportgen.
func main() {
	Execute()
}

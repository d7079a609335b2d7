// Package version exposes build metadata injected through ldflags
// (Version, Commit, BuildTime) and a cobra `version` subcommand.
package version

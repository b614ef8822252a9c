package config

// Build information reported by `kleek version`
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// SetBuildFlags records the values injected into the main package at link time
func SetBuildFlags(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
}

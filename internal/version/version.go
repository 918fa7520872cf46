package version

// Version information, overridden at build time with -ldflags "-X ...".
var (
	Version    = "0.1.0-dev"
	BuildDate  = "undefined"
	CommitHash = "undefined"
)

// VersionInfo returns formatted version information
func VersionInfo() string {
	return "stamplog version " + Version + " (build: " + BuildDate + ", commit: " + CommitHash + ")"
}

// Package buildinfo carries version stamps injected with -ldflags "-X".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for window titles and log lines.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	default:
		return "dev"
	}
}

// Line is the startup banner.
func Line() string {
	return "gyrocube " + Short() + " (built " + Date + ")"
}

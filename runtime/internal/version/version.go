package version

// Set at build time with -ldflags "-X .../version.Version=...".
var (
	Version = "0.1.0-dev"
	Commit  = ""
)

// String returns "blinefmt <version>" plus the commit when known.
func String() string {
	s := "blinefmt " + Version
	if Commit != "" {
		s += " (" + Commit + ")"
	}
	return s
}

package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the gqlg CLI, overridable via -ldflags -X.
var (
	Version    = "0.1.0-dev"
	GitCommit  = ""
	GitMessage = ""
	BuildDate  = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with each numeric component highlighted. Any
// pre-release suffix is left plain.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	s := majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2])
	if suffix != "" {
		s += "-" + suffix
	}
	return s
}

// Describe returns the multi-line output of `gqlg version`.
func Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "gqlg %s\n", Colored())
	if GitCommit != "" {
		fmt.Fprintf(&sb, "commit: %s\n", GitCommit)
	}
	if GitMessage != "" {
		fmt.Fprintf(&sb, "message: %s\n", GitMessage)
	}
	if BuildDate != "" {
		fmt.Fprintf(&sb, "built: %s\n", BuildDate)
	}
	return sb.String()
}

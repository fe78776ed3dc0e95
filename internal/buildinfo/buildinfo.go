// Package buildinfo carries the values stamped in at link time with
// -ldflags "-X hetvrp/internal/buildinfo.Version=...".
package buildinfo

import (
	"fmt"
	"strings"

	"hetvrp/internal/check"
)

var (
	Version = "dev"
	Commit  = ""
	BuiltAt = ""
)

// Checks names the route validation mode compiled into this binary.
func Checks() string {
	if check.Enabled {
		return "checked"
	}
	return "unchecked"
}

func Info() map[string]string {
	return map[string]string{
		"version": Version,
		"commit":  Commit,
		"builtAt": BuiltAt,
		"checks":  Checks(),
	}
}

// String renders the stamp on one line for -version.
func String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "vrp %s", Version)
	if Commit != "" {
		fmt.Fprintf(&b, " commit %s", Commit)
	}
	if BuiltAt != "" {
		fmt.Fprintf(&b, " built %s", BuiltAt)
	}
	fmt.Fprintf(&b, " (%s)", Checks())
	return b.String()
}

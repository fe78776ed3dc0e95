//go:build vrp_unchecked

package check

// Enabled reports whether preconditions are validated.
const Enabled = false

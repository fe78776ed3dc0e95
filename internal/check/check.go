// Package check holds the build switch for precondition validation in the
// graph and route packages.
//
// Validation is on by default. Building with -tags vrp_unchecked turns
// Enabled into a false constant so every guarded check is compiled out;
// contract violations are then the caller's problem and are undefined.
package check

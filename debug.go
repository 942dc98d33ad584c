//go:build debug

package squircle

// debugChecks enables precondition assertions in debug builds.
const debugChecks = true

//go:build !debug

package squircle

// debugChecks disables precondition assertions outside debug builds.
const debugChecks = false

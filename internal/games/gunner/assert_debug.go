//go:build debug

package gunner

// debugAssertions makes Tick validate the world after every step and panic
// on a violation.
const debugAssertions = true

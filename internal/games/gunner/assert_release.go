//go:build !debug

package gunner

const debugAssertions = false

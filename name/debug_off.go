//go:build !numerology_debug

package name

const debugBuild = false

//go:build numerology_debug

package name

// debugBuild makes strict letter lookups the default.
const debugBuild = true

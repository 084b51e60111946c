//go:build !lintdebug

package engine

// Structural consistency checks are compiled out of release builds; build
// with -tags lintdebug to enable them.
const assertionsEnabled = false

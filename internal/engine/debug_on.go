//go:build lintdebug

package engine

const assertionsEnabled = true

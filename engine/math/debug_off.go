//go:build !spldebug

package math

const debugEnabled = false

//go:build velecsdebug

package math

const debugAsserts = true

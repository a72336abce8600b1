//go:build !velecsdebug

package math

const debugAsserts = false

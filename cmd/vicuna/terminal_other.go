//go:build !linux

package main

import "io"

func isTerminal(_ io.Writer) bool {
	return false
}

//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package termio

func flush(int) {}

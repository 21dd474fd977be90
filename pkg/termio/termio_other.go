//go:build !unix

package termio

func drain(int) {}

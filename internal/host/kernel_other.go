//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows)

package host

// readKernel has no kernel to ask on these platforms; OSName falls back to
// GOOS and the release is left empty.
func readKernel() (Kernel, error) {
	return Kernel{}, nil
}

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package host

import "golang.org/x/sys/unix"

func readKernel() (Kernel, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Kernel{}, err
	}
	return Kernel{
		Name:    unix.ByteSliceToString(uts.Sysname[:]),
		Release: unix.ByteSliceToString(uts.Release[:]),
	}, nil
}

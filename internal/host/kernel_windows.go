//go:build windows

package host

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// readKernel reports the marketing name Java uses ("Windows 11", "Windows
// Server 2022") and the major.minor kernel version.
func readKernel() (Kernel, error) {
	v := windows.RtlGetVersion()

	return Kernel{
		Name:    WindowsName(v.MajorVersion, v.MinorVersion, v.BuildNumber, v.ProductType),
		Release: fmt.Sprintf("%d.%d", v.MajorVersion, v.MinorVersion),
	}, nil
}

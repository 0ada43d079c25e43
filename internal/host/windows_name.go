package host

const verNTWorkstation = 1

// serverReleases maps the first build of each Windows Server release on the
// 10.0 kernel to its year, newest first.
var serverReleases = []struct {
	build uint32
	name  string
}{
	{26100, "Windows Server 2025"},
	{20348, "Windows Server 2022"},
	{17763, "Windows Server 2019"},
	{14393, "Windows Server 2016"},
}

// WindowsName returns the os.name Java reports for a Windows version as
// read by RtlGetVersion. Unknown versions fall back to "Windows" or
// "Windows Server".
func WindowsName(major, minor, build uint32, productType byte) string {
	server := productType != verNTWorkstation

	switch {
	case major == 10 && server:
		for _, r := range serverReleases {
			if build >= r.build {
				return r.name
			}
		}
	case major == 10 && build >= 22000:
		return "Windows 11"
	case major == 10:
		return "Windows 10"
	case major == 6 && minor == 3 && server:
		return "Windows Server 2012 R2"
	case major == 6 && minor == 3:
		return "Windows 8.1"
	case major == 6 && minor == 2 && server:
		return "Windows Server 2012"
	case major == 6 && minor == 2:
		return "Windows 8"
	case major == 6 && minor == 1 && server:
		return "Windows Server 2008 R2"
	case major == 6 && minor == 1:
		return "Windows 7"
	}

	if server {
		return "Windows Server"
	}
	return "Windows"
}

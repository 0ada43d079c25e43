package host

import (
	"os"
	"os/user"
	goruntime "runtime"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/firefly-engineering/checkenv/internal/errors"
	"github.com/firefly-engineering/checkenv/internal/logging"
	"github.com/firefly-engineering/checkenv/internal/report"
)

// Kernel identifies the running operating system.
type Kernel struct {
	// Name is the system name as reported by the kernel, e.g. "Linux".
	Name string

	// Release is the kernel release, e.g. "6.8.0-45-generic".
	Release string
}

// Collector gathers OS and user-session properties. Every function field
// may be replaced for testing; nil fields use the real host.
type Collector struct {
	Kernel      func() (Kernel, error)
	CurrentUser func() (*user.User, error)
	HomeDir     func() (string, error)
	Getwd       func() (string, error)
	Lookup      func(string) (string, bool)
	GOOS        string
}

// NewCollector returns a Collector reading the real host.
func NewCollector() *Collector {
	return &Collector{
		Kernel:      readKernel,
		CurrentUser: user.Current,
		HomeDir:     os.UserHomeDir,
		Getwd:       os.Getwd,
		Lookup:      os.LookupEnv,
		GOOS:        goruntime.GOOS,
	}
}

// Collect returns os.name, os.version, user.name, user.home and user.dir.
//
// Only a failure of the kernel identification call is an error; it means
// the host cannot be queried at all. Any other value that cannot be
// determined is left out of the result.
func (c *Collector) Collect() (report.Properties, error) {
	c.fillDefaults()
	log := logging.With("component", "host")

	k, err := c.Kernel()
	if err != nil {
		return nil, errors.HostUnavailable("kernel identification", err)
	}

	props := report.Properties{
		report.KeyOSName:    OSName(k.Name, c.GOOS),
		report.KeyOSVersion: k.Release,
	}

	u, err := c.CurrentUser()
	if err != nil {
		log.Debug("current user lookup failed", "error", err)
	}

	if name := userName(u, c.Lookup); name != "" {
		props[report.KeyUserName] = name
	}

	if u != nil && u.HomeDir != "" {
		props[report.KeyUserHome] = u.HomeDir
	} else if home, err := c.HomeDir(); err == nil {
		props[report.KeyUserHome] = home
	} else {
		log.Debug("home directory unknown", "error", err)
	}

	if wd, err := c.Getwd(); err == nil {
		props[report.KeyUserDir] = wd
	} else {
		log.Debug("working directory unknown", "error", err)
	}

	return props, nil
}

func (c *Collector) fillDefaults() {
	if c.Kernel == nil {
		c.Kernel = readKernel
	}
	if c.CurrentUser == nil {
		c.CurrentUser = user.Current
	}
	if c.HomeDir == nil {
		c.HomeDir = os.UserHomeDir
	}
	if c.Getwd == nil {
		c.Getwd = os.Getwd
	}
	if c.Lookup == nil {
		c.Lookup = os.LookupEnv
	}
	if c.GOOS == "" {
		c.GOOS = goruntime.GOOS
	}
}

// userName returns the account name without any Windows domain prefix,
// falling back to $USER or $USERNAME.
func userName(u *user.User, lookup func(string) (string, bool)) string {
	if u != nil && u.Username != "" {
		name := u.Username
		if i := strings.LastIndex(name, `\`); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
	}
	return ""
}

// goosNames maps GOOS values to the names Java runtimes use for os.name.
var goosNames = map[string]string{
	"aix":       "AIX",
	"darwin":    "Mac OS X",
	"dragonfly": "DragonFly",
	"freebsd":   "FreeBSD",
	"illumos":   "SunOS",
	"linux":     "Linux",
	"netbsd":    "NetBSD",
	"openbsd":   "OpenBSD",
	"solaris":   "SunOS",
	"windows":   "Windows",
}

// OSName returns the os.name value for a kernel system name, using goos
// when the kernel did not report one.
func OSName(sysname, goos string) string {
	switch sysname {
	case "":
	case "Darwin":
		return "Mac OS X"
	default:
		return sysname
	}

	if name, ok := goosNames[goos]; ok {
		return name
	}
	return cases.Title(language.Und).String(goos)
}

package jvm

import (
	"errors"
	"fmt"
	"path/filepath"
	goruntime "runtime"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/checkenv/internal/logging"
	"github.com/firefly-engineering/checkenv/internal/system"
)

// EnvJavaHome names the conventional Java installation variable.
const EnvJavaHome = "JAVA_HOME"

// ErrNotFound is returned when no java binary can be located.
var ErrNotFound = errors.New("java runtime not found")

// LocateOptions controls where Locate looks for java.
type LocateOptions struct {
	// Explicit is a configured java path. When set, nothing else is tried.
	Explicit string

	// Lookup reads environment variables, typically os.LookupEnv.
	Lookup func(string) (string, bool)

	// FS defaults to system.DefaultFS().
	FS system.FileSystem
}

// Binary returns the java executable name for the host OS.
func Binary() string {
	if goruntime.GOOS == "windows" {
		return "java.exe"
	}
	return "java"
}

// Locate finds the java binary to probe: the configured path, then
// $JAVA_HOME/bin/java, then java on $PATH.
func Locate(opts LocateOptions) (string, error) {
	fs := opts.FS
	if fs == nil {
		fs = system.DefaultFS()
	}

	if opts.Explicit != "" {
		if isExecutable(fs, opts.Explicit) {
			logging.Debug("using configured java", "path", opts.Explicit)
			return opts.Explicit, nil
		}
		return "", fmt.Errorf("configured java %s: %w", opts.Explicit, ErrNotFound)
	}

	if opts.Lookup != nil {
		if home, ok := opts.Lookup(EnvJavaHome); ok && home != "" {
			if path, ok := javaHomeBinary(fs, home); ok {
				logging.Debug("using java from JAVA_HOME", "path", path)
				return path, nil
			}
		}
	}

	path, err := fs.LookPath(Binary())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	logging.Debug("using java from PATH", "path", path)
	return path, nil
}

func isExecutable(fs system.FileSystem, path string) bool {
	info, err := fs.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if goruntime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0111 != 0
}

func javaHomeBinary(fs system.FileSystem, home string) (string, bool) {
	if !fs.IsDir(home) {
		logging.Debug("JAVA_HOME is not a directory", "java_home", home)
		return "", false
	}
	// Symlinks below JAVA_HOME are resolved inside it.
	path, err := securejoin.SecureJoin(home, filepath.Join("bin", Binary()))
	if err != nil {
		logging.Debug("ignoring JAVA_HOME", "java_home", home, "error", err)
		return "", false
	}
	if !isExecutable(fs, path) {
		logging.Debug("JAVA_HOME has no java binary", "java_home", home)
		return "", false
	}
	return path, true
}

package jvm

import (
	"context"
	"errors"
	"fmt"
	"time"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/checkenv/internal/logging"
	"github.com/firefly-engineering/checkenv/internal/report"
	"github.com/firefly-engineering/checkenv/internal/system"
)

// ProbeArgs are passed to java to print its system properties. -version
// keeps the JVM from looking for a main class.
var ProbeArgs = []string{"-XshowSettings:properties", "-version"}

// ErrNoSettings is returned when java ran but printed no property block,
// e.g. a runtime too old to support -XshowSettings.
var ErrNoSettings = errors.New("java printed no property settings")

// CommandLine returns the java invocation used to read properties, quoted
// for a shell so that a failure can be reproduced by pasting it.
func CommandLine(javaPath string) string {
	return shellquote.Join(append([]string{javaPath}, ProbeArgs...)...)
}

// Probe runs javaPath and returns the system properties it reports.
// A non-positive timeout means no timeout.
func Probe(ctx context.Context, exec system.CommandExecutor, javaPath string, timeout time.Duration) (report.Properties, error) {
	if exec == nil {
		exec = system.DefaultExecutor()
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	command := CommandLine(javaPath)
	log := logging.With("component", "jvm")
	log.Debug("probing java runtime", "command", command)

	output, err := exec.Execute(ctx, javaPath, ProbeArgs...)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%s: %w", command, ctxErr)
	}

	props := ParseSettings(output)
	if len(props) == 0 {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", command, err)
		}
		return nil, fmt.Errorf("%s: %w", command, ErrNoSettings)
	}

	if err != nil {
		// The property block is printed before -version output, so a late
		// failure still leaves usable values.
		log.Debug("java exited with error after printing settings", "error", err)
	}

	log.Debug("java runtime probed", "properties", len(props), "version", props.Get(report.KeyJavaVersion))
	return props, nil
}

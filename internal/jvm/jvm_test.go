package jvm

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"testing"
	"time"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/checkenv/internal/report"
	"github.com/firefly-engineering/checkenv/internal/system"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", name, err)
	}
	return data
}

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestParseSettings(t *testing.T) {
	props := ParseSettings(readFixture(t, "jdk21.txt"))

	tests := []struct {
		key  string
		want string
	}{
		{report.KeyJavaVersion, "21.0.2"},
		{report.KeyJavaVendor, "Eclipse Adoptium"},
		{report.KeyJavaHome, "/opt/java/openjdk"},
		{report.KeyJavaClassVersion, "65.0"},
		{report.KeyJavaClassPath, ""},
		{"java.runtime.name", "OpenJDK Runtime Environment"},
		{"line.separator", `\n`},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := props.Lookup(tt.key)
			if !ok {
				t.Fatalf("%s missing from parsed settings", tt.key)
			}
			if got != tt.want {
				t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestParseSettings_ListValues(t *testing.T) {
	props := ParseSettings(readFixture(t, "jdk21.txt"))

	sep := string(filepath.ListSeparator)
	want := strings.Join([]string{"/usr/java/packages/lib", "/usr/lib64", "/lib64"}, sep)
	if got := props.Get("java.library.path"); got != want {
		t.Errorf("java.library.path = %q, want %q", got, want)
	}
}

func TestParseSettings_StopsAtBlankLine(t *testing.T) {
	props := ParseSettings(readFixture(t, "jdk21.txt"))

	for key := range props {
		if strings.Contains(key, "openjdk") || strings.Contains(key, "OpenJDK") {
			t.Errorf("version banner leaked into properties: %q", key)
		}
	}
	if len(props) != 15 {
		t.Errorf("parsed %d properties, want 15", len(props))
	}
}

func TestParseSettings_NoBlock(t *testing.T) {
	tests := []struct {
		name   string
		output []byte
	}{
		{"empty", nil},
		{"old jvm", readFixture(t, "jdk6.txt")},
		{"entries without header", []byte("    java.version = 21\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if props := ParseSettings(tt.output); len(props) != 0 {
				t.Errorf("ParseSettings() = %v, want empty", props)
			}
		})
	}
}

func TestParseSettings_CRLF(t *testing.T) {
	output := "Property settings:\r\n    java.version = 17.0.9\r\n    java.home = C:\\jdk\r\n\r\n"

	props := ParseSettings([]byte(output))
	if props.Get(report.KeyJavaVersion) != "17.0.9" {
		t.Errorf("java.version = %q", props.Get(report.KeyJavaVersion))
	}
	if props.Get(report.KeyJavaHome) != `C:\jdk` {
		t.Errorf("java.home = %q", props.Get(report.KeyJavaHome))
	}
}

func TestLocate_Explicit(t *testing.T) {
	fs := system.NewMockFS()
	fs.AddFile("/opt/jdk/bin/java", 0755)
	fs.AddFile("/usr/bin/java", 0755)
	fs.PathDirs = []string{"/usr/bin"}

	got, err := Locate(LocateOptions{Explicit: "/opt/jdk/bin/java", FS: fs})
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if got != "/opt/jdk/bin/java" {
		t.Errorf("Locate() = %q", got)
	}

	_, err = Locate(LocateOptions{Explicit: "/missing/java", FS: fs})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Locate() missing explicit error = %v, want ErrNotFound", err)
	}
}

func TestLocate_JavaHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "jdk")
	javaPath := filepath.Join(home, "bin", Binary())

	fs := system.NewMockFS()
	fs.AddFile(javaPath, 0755)
	fs.AddFile("/usr/bin/java", 0755)
	fs.PathDirs = []string{"/usr/bin"}

	got, err := Locate(LocateOptions{
		Lookup: envLookup(map[string]string{EnvJavaHome: home}),
		FS:     fs,
	})
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if got != javaPath {
		t.Errorf("Locate() = %q, want %q", got, javaPath)
	}
}

func TestLocate_FallsBackToPath(t *testing.T) {
	fs := system.NewMockFS()
	fs.AddFile("/usr/bin/java", 0755)
	fs.PathDirs = []string{"/usr/bin"}

	got, err := Locate(LocateOptions{
		Lookup: envLookup(map[string]string{EnvJavaHome: filepath.Join(t.TempDir(), "empty")}),
		FS:     fs,
	})
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if got != "/usr/bin/java" {
		t.Errorf("Locate() = %q, want /usr/bin/java", got)
	}
}

func TestLocate_JavaHomeNotDirectory(t *testing.T) {
	fs := system.NewMockFS()
	fs.AddFile("/opt/jdk", 0755)
	fs.AddFile("/usr/bin/java", 0755)
	fs.PathDirs = []string{"/usr/bin"}

	got, err := Locate(LocateOptions{
		Lookup: envLookup(map[string]string{EnvJavaHome: "/opt/jdk"}),
		FS:     fs,
	})
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if got != "/usr/bin/java" {
		t.Errorf("Locate() = %q, want /usr/bin/java when JAVA_HOME is a file", got)
	}
}

func TestLocate_NotFound(t *testing.T) {
	_, err := Locate(LocateOptions{
		Lookup: envLookup(nil),
		FS:     system.NewMockFS(),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Locate() error = %v, want ErrNotFound", err)
	}
}

func TestLocate_SkipsNonExecutable(t *testing.T) {
	if goruntime.GOOS == "windows" {
		t.Skip("no executable bit on windows")
	}

	fs := system.NewMockFS()
	fs.AddFile("/opt/jdk/bin/java", 0644)

	if _, err := Locate(LocateOptions{Explicit: "/opt/jdk/bin/java", FS: fs}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Locate() error = %v, want ErrNotFound", err)
	}
}

func TestProbe(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("/opt/jdk/bin/java -XshowSettings:properties", readFixture(t, "jdk21.txt"), nil)

	props, err := Probe(context.Background(), exec, "/opt/jdk/bin/java", time.Second)
	if err != nil {
		t.Fatalf("Probe() error: %v", err)
	}
	if props.Get(report.KeyJavaVersion) != "21.0.2" {
		t.Errorf("java.version = %q", props.Get(report.KeyJavaVersion))
	}

	last, ok := exec.LastCommand()
	if !ok {
		t.Fatal("no command executed")
	}
	if strings.Join(last.Args, " ") != "-XshowSettings:properties -version" {
		t.Errorf("probe args = %v", last.Args)
	}
}

func TestProbe_ExitErrorAfterSettings(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.DefaultResponse = system.MockResponse{
		Output: readFixture(t, "jdk21.txt"),
		Err:    errors.New("exit status 1"),
	}

	props, err := Probe(context.Background(), exec, "java", 0)
	if err != nil {
		t.Fatalf("Probe() error: %v", err)
	}
	if props.Get(report.KeyJavaVendor) != "Eclipse Adoptium" {
		t.Errorf("java.vendor = %q", props.Get(report.KeyJavaVendor))
	}
}

func TestProbe_Failures(t *testing.T) {
	execErr := errors.New("exec: permission denied")

	tests := []struct {
		name    string
		resp    system.MockResponse
		wantErr error
	}{
		{"exec failure", system.MockResponse{Err: execErr}, execErr},
		{"old jvm", system.MockResponse{Output: readFixture(t, "jdk6.txt"), Err: errors.New("exit status 1")}, nil},
		{"no output", system.MockResponse{}, ErrNoSettings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := system.NewMockExecutor()
			exec.DefaultResponse = tt.resp

			props, err := Probe(context.Background(), exec, "java", time.Second)
			if err == nil {
				t.Fatalf("Probe() = %v, want error", props)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Probe() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCommandLine_NamesFailures(t *testing.T) {
	javaPath := "/opt/my jdk/bin/java"
	exec := system.NewMockExecutor()
	exec.DefaultResponse = system.MockResponse{Err: errors.New("exec: permission denied")}

	_, err := Probe(context.Background(), exec, javaPath, time.Second)
	if err == nil {
		t.Fatal("Probe() should fail")
	}

	command := CommandLine(javaPath)
	if !strings.HasPrefix(err.Error(), command+": ") {
		t.Errorf("Probe() error = %q, want it to start with %q", err, command)
	}

	words, splitErr := shellquote.Split(command)
	if splitErr != nil {
		t.Fatalf("CommandLine() = %q is not shell-splittable: %v", command, splitErr)
	}
	want := append([]string{javaPath}, ProbeArgs...)
	if strings.Join(words, "\x00") != strings.Join(want, "\x00") {
		t.Errorf("CommandLine() splits into %q, want %q", words, want)
	}
}

func TestProbe_Timeout(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.Block = true

	_, err := Probe(context.Background(), exec, "java", 20*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Probe() error = %v, want deadline exceeded", err)
	}
}

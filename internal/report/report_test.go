package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

var wantLabels = []string{
	"Java Version",
	"Java Vendor",
	"Java Home",
	"Java Class Version",
	"Java Class Path",
	"OS Name",
	"OS Version",
	"User Name",
	"User Home",
	"User Dir",
}

func fullProperties() Properties {
	return Properties{
		KeyJavaVersion:      "21.0.2",
		KeyJavaVendor:       "Eclipse Adoptium",
		KeyJavaHome:         "/opt/jdk-21",
		KeyJavaClassVersion: "65.0",
		KeyJavaClassPath:    ".",
		KeyOSName:           "Linux",
		KeyOSVersion:        "6.8.0-45-generic",
		KeyUserName:         "alice",
		KeyUserHome:         "/home/alice",
		KeyUserDir:          "/home/alice/src",
	}
}

func TestAttributes_Order(t *testing.T) {
	attrs := Attributes()

	if len(attrs) != len(wantLabels) {
		t.Fatalf("len(Attributes()) = %d, want %d", len(attrs), len(wantLabels))
	}
	for i, a := range attrs {
		if a.Label != wantLabels[i] {
			t.Errorf("Attributes()[%d].Label = %q, want %q", i, a.Label, wantLabels[i])
		}
		if a.Key == "" {
			t.Errorf("Attributes()[%d] has empty key", i)
		}
	}
}

func TestAttributes_ReturnsCopy(t *testing.T) {
	attrs := Attributes()
	attrs[0].Label = "mutated"

	if Attributes()[0].Label != "Java Version" {
		t.Error("mutating the returned slice must not change the attribute list")
	}
}

func TestReporter_Lines(t *testing.T) {
	lines := New(fullProperties()).Lines()

	want := []string{
		"Java Version: 21.0.2",
		"Java Vendor: Eclipse Adoptium",
		"Java Home: /opt/jdk-21",
		"Java Class Version: 65.0",
		"Java Class Path: .",
		"OS Name: Linux",
		"OS Version: 6.8.0-45-generic",
		"User Name: alice",
		"User Home: /home/alice",
		"User Dir: /home/alice/src",
	}

	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReporter_MissingValues(t *testing.T) {
	tests := []struct {
		name string
		src  Source
	}{
		{"nil source", nil},
		{"empty properties", Properties{}},
		{"only os", Properties{KeyOSName: "Linux"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := New(tt.src).Lines()

			if len(lines) != len(wantLabels) {
				t.Fatalf("got %d lines, want %d", len(lines), len(wantLabels))
			}
			for i, line := range lines {
				if !strings.HasPrefix(line, wantLabels[i]+Separator) {
					t.Errorf("line %d = %q, want prefix %q", i, line, wantLabels[i]+Separator)
				}
			}
			if lines[0] != "Java Version: " {
				t.Errorf("missing value should render empty, got %q", lines[0])
			}
		})
	}
}

func TestReporter_FlattensLineBreaks(t *testing.T) {
	props := Properties{KeyJavaClassPath: "a.jar\nb.jar\r\nc.jar\rd.jar"}

	r := New(props)
	got := r.Value(Attribute{Label: "Java Class Path", Key: KeyJavaClassPath})
	if got != "a.jar b.jar c.jar d.jar" {
		t.Errorf("Value() = %q", got)
	}

	var buf bytes.Buffer
	if err := r.Write(&buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != len(wantLabels) {
		t.Errorf("output has %d newlines, want %d", n, len(wantLabels))
	}
}

func TestReporter_Write(t *testing.T) {
	var buf bytes.Buffer
	if err := New(fullProperties()).Write(&buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "Java Version: 21.0.2\n") {
		t.Errorf("first line wrong: %q", out)
	}
	if !strings.Contains(out, "\nOS Name: Linux\n") {
		t.Errorf("OS Name line missing: %q", out)
	}
	if !strings.HasSuffix(out, "User Dir: /home/alice/src\n") {
		t.Errorf("output should end with newline-terminated User Dir line: %q", out)
	}
}

func TestReporter_Idempotent(t *testing.T) {
	r := New(fullProperties())

	var first, second bytes.Buffer
	if err := r.Write(&first); err != nil {
		t.Fatal(err)
	}
	if err := r.Write(&second); err != nil {
		t.Fatal(err)
	}

	if first.String() != second.String() {
		t.Errorf("repeated writes differ:\n%s\n---\n%s", first.String(), second.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestReporter_WriteError(t *testing.T) {
	if err := New(fullProperties()).Write(failingWriter{}); err == nil {
		t.Error("Write() should surface writer errors")
	}
}

func TestProperties_Merge(t *testing.T) {
	base := Properties{KeyOSName: "Linux", KeyJavaVersion: "stale"}
	jvm := Properties{
		KeyJavaVersion: "21.0.2",
		KeyOSName:      "Mac OS X",
		"sun.arch":     "64",
	}

	base.Merge(jvm, "java.")

	if base.Get(KeyJavaVersion) != "21.0.2" {
		t.Errorf("java.version = %q, want merged value", base.Get(KeyJavaVersion))
	}
	if base.Get(KeyOSName) != "Linux" {
		t.Errorf("os.name = %q, should not be overwritten", base.Get(KeyOSName))
	}
	if _, ok := base.Lookup("sun.arch"); ok {
		t.Error("keys outside the prefixes should not be merged")
	}

	all := Properties{}
	all.Merge(jvm)
	if len(all) != len(jvm) {
		t.Errorf("Merge without prefixes copied %d entries, want %d", len(all), len(jvm))
	}
}

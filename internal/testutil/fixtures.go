package testutil

import (
	"embed"
)

//go:embed fixtures/*.txt
var fixturesFS embed.FS

// Captured `java -XshowSettings:properties -version` outputs.
const (
	Temurin21   = "temurin21.txt"
	Corretto8   = "corretto8.txt"
	Unsupported = "unsupported.txt"
)

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// MustLoadFixture loads a fixture file, panicking if it is missing.
func MustLoadFixture(name string) []byte {
	data, err := LoadFixture(name)
	if err != nil {
		panic(err)
	}
	return data
}

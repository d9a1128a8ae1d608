// Package fstest provides a conformance test suite for validating filesystem
// providers against the core.FS contracts that storage backends rely on.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"slices"
	"testing"

	"github.com/rightson/overleaf/fs/core"
)

// FSTestConfig configures the test suite to match provider behavior.
type FSTestConfig struct {
	// ImplicitParentDirs indicates files can be created without parent directories.
	// When true, Create("a/b/c.txt") succeeds even if "a" and "a/b" don't exist.
	ImplicitParentDirs bool

	// SkipTests lists specific test names to skip.
	// Format: "TestGroup/SubTest" (e.g., "WriteFS/CreateInNonExistentDir").
	SkipTests []string
}

// BillyTestConfig returns configuration for go-billy backed providers, which
// create missing parent directories on write.
func BillyTestConfig() FSTestConfig {
	return FSTestConfig{ImplicitParentDirs: true}
}

// TestSuite runs all conformance tests against a filesystem.
// The newFS function should return a fresh, empty filesystem for each group.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, BillyTestConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	groups := []struct {
		name string
		run  func(*testing.T, core.FS, FSTestConfig)
	}{
		{"ReadFS", TestReadFSWithConfig},
		{"WriteFS", TestWriteFSWithConfig},
		{"ManageFS", TestManageFSWithConfig},
		{"TempFS", TestTempFSWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if slices.Contains(config.SkipTests, g.name) {
				t.Skip("Skipped by provider configuration")
			}
			g.run(t, newFS(), config)
		})
	}
}

// skip reports whether a subtest is listed in config.SkipTests and skips it.
func skip(t *testing.T, config FSTestConfig, name string) {
	t.Helper()
	if slices.Contains(config.SkipTests, name) {
		t.Skip("Skipped by provider configuration")
	}
}

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInternalImportForbiddenPredicate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"oceankicks/internal/core", true},
		{"example.com/some/internal/deep/path", true},
		{"example.com/pkg/x", false},
		{"internal", false},
		{"notinternal", false},
		{"", false},
	}
	for _, c := range cases {
		if got := InternalImportForbidden(c.in); got != c.want {
			t.Fatalf("InternalImportForbidden(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestThirdPartyImportForbiddenPredicate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"github.com/prometheus/client_golang/prometheus", true},
		{"modernc.org/sqlite", true},
		{"encoding/json", false},
		{"oceankicks/pkg/domain", false},
		{"fmt", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ThirdPartyImportForbidden(c.in); got != c.want {
			t.Fatalf("ThirdPartyImportForbidden(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestAssertNoDirectImportsIgnoresTestFilesAndSubdirs(t *testing.T) {
	dir := t.TempDir()

	src := []byte("package tmp\nimport \"fmt\"\nfunc X(){fmt.Println(1)}")
	if err := os.WriteFile(filepath.Join(dir, "x.go"), src, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	testSrc := []byte("package tmp\nimport \"testing\"\nimport \"forbidden/pkg\"\nfunc TestX(t *testing.T){}")
	if err := os.WriteFile(filepath.Join(dir, "x_test.go"), testSrc, 0o600); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	sub := filepath.Join(dir, "subdir")
	if err := os.Mkdir(sub, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	subSrc := []byte("package sub\nimport \"forbidden/pkg\"\nfunc Y(){}")
	if err := os.WriteFile(filepath.Join(sub, "y.go"), subSrc, 0o600); err != nil {
		t.Fatalf("write subdir file: %v", err)
	}

	AssertNoDirectImports(t, dir, func(ip string) bool {
		return ip == "forbidden/pkg"
	}, "test files and subdirectories are out of scope")
}

func TestAssertNoDirectImportsEmptyDirectory(t *testing.T) {
	AssertNoDirectImports(t, t.TempDir(), func(string) bool { return true }, "empty directory has nothing to forbid")
}

func TestAssertNoTransitiveDependency(t *testing.T) {
	AssertNoTransitiveDependency(t, ".", func(path string) bool {
		return path == "github.com/some/package/we/dont/use"
	}, "none")
}

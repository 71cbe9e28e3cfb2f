package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// UpdateGoldenEnv names the environment variable that makes Golden rewrite
// the golden file instead of comparing against it.
const UpdateGoldenEnv = "TODOBOARD_UPDATE_GOLDEN"

func goldenPath(name string) string {
	return filepath.Join("testdata", name+".golden")
}

// Golden compares rendered board output against testdata/<name>.golden
// and reports the first line that differs.
func Golden(t *testing.T, name, got string) {
	t.Helper()

	path := goldenPath(name)
	if os.Getenv(UpdateGoldenEnv) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("failed to update %s: %v", path, err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v\nGot:\n%s", path, err, got)
	}
	want := string(data)
	if got == want {
		return
	}

	line, wantLine, gotLine := firstDiff(want, got)
	t.Errorf("%s differs at line %d\nwant: %q\ngot:  %q\n\nGot:\n%s", path, line, wantLine, gotLine, got)
}

// firstDiff returns the 1-based number of the first differing line and
// both versions of it. A missing line is reported as empty.
func firstDiff(want, got string) (int, string, string) {
	w := strings.Split(want, "\n")
	g := strings.Split(got, "\n")
	for i := 0; i < max(len(w), len(g)); i++ {
		var wl, gl string
		if i < len(w) {
			wl = w[i]
		}
		if i < len(g) {
			gl = g[i]
		}
		if wl != gl {
			return i + 1, wl, gl
		}
	}
	return 0, "", ""
}

// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> config resolution -> store/backup -> SQLite.
// Fine-grained behaviour (permission edge cases, audit retention, backup
// atomicity) is covered by unit tests in internal/; these tests prove the
// documented command surface and exit-code contract.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the tradexdb binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "tradexdb-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "tradexdb"
		if os.PathSeparator == '\\' {
			binaryName = "tradexdb.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv returns an isolated environment for a CLI invocation: HOME
// points into the test's temp space so no real config file leaks in, and
// the database path is pinned to dbPath.
func testEnv(t *testing.T, dbPath string, extra ...string) []string {
	t.Helper()

	env := []string{
		"HOME=" + t.TempDir(),
		"PATH=" + os.Getenv("PATH"),
		"TRADEX_DB_PATH=" + dbPath,
	}
	return append(env, extra...)
}

// run executes the built binary with the given environment and returns
// combined output.
func run(t *testing.T, env []string, args ...string) (string, error) {
	t.Helper()

	cmd := exec.Command(buildBinary(t), args...)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// fileops.go implements the atomic file copy both operations are built on.
//
// The copy never touches the destination path directly: bytes go to an
// adjacent temporary file that is created owner-only, chmodded again to
// defeat the umask, fsynced, and only then renamed into place. An
// interrupted copy leaves the destination either absent or fully intact,
// never half-written.

package backup

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fixhub-es/tradexdb/internal/store"
)

// copyAtomic copies src to dst with owner-only permissions via an
// adjacent temp file and rename. The temp file is removed on failure.
func copyAtomic(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return classify(fmt.Errorf("open source %s: %w", src, err))
	}
	defer in.Close()

	tmp := dst + ".tmp"
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, store.FileMode)
	if err != nil {
		return classify(fmt.Errorf("create %s: %w", tmp, err))
	}

	// O_CREATE mode is filtered through the umask; chmod explicitly so the
	// artifact is owner-only regardless of the environment.
	if err := out.Chmod(store.FileMode); err != nil {
		out.Close()
		os.Remove(tmp)
		return classify(fmt.Errorf("set mode on %s: %w", tmp, err))
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("copy to %s: %w", tmp, err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("sync %s: %w", tmp, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return classify(fmt.Errorf("rename %s to %s: %w", tmp, dst, err))
	}

	return syncDir(filepath.Dir(dst))
}

// syncDir fsyncs a directory so a completed rename survives power loss.
// Best-effort on platforms where directories cannot be fsynced.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return nil
	}
	defer d.Close()
	_ = d.Sync()
	return nil
}

// classify maps permission failures onto the sentinel so callers can
// distinguish them from transient I/O errors.
func classify(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermission, err)
	}
	return err
}

package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// maxSocketPath mirrors the kernel's sun_path limit for unix sockets.
const maxSocketPath = 103

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable. A missing directory is created first so a fresh
// install passes.
func CheckDirectoryAccess(name, path string) Result {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: create: %v)", path, err)}
	}
	info, err := os.Stat(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFreeSpace verifies the filesystem holding path has at least minMB
// megabytes available. A minMB of zero disables the check.
func CheckFreeSpace(name, path string, minMB int64) Result {
	if minMB <= 0 {
		return Result{Name: name, Passed: true, Detail: "check disabled"}
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}

	availMB := int64(stat.Bavail) * stat.Bsize / (1024 * 1024)
	if availMB < minMB {
		return Result{Name: name, Detail: fmt.Sprintf("%d MB available, need %d MB", availMB, minMB)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d MB available", availMB)}
}

// CheckSocketPath verifies the control socket path fits in sun_path and that
// a stale socket file, if present, can be removed by the daemon.
func CheckSocketPath(name, path string) Result {
	if path == "" {
		return Result{Name: name, Detail: "socket path is empty"}
	}
	if len(path) > maxSocketPath {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: path exceeds %d bytes)", path, maxSocketPath)}
	}
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Passed: true, Detail: path}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.Mode()&os.ModeSocket == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: exists and is not a socket)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (stale socket will be replaced)", path)}
}

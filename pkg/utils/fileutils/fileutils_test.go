package fileutils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAbsPathRejectsEmpty(t *testing.T) {
	t.Parallel()

	if _, err := AbsPath("   "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestAbsPathCleansRelativePath(t *testing.T) {
	t.Parallel()

	got, err := AbsPath("a/../b")
	if err != nil {
		t.Fatalf("AbsPath returned error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("AbsPath = %q, want absolute path", got)
	}
	if filepath.Base(got) != "b" {
		t.Fatalf("AbsPath = %q, want cleaned path ending in b", got)
	}
}

func TestWriteFileAtomicPreservesMode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pyproject.toml")
	if err := os.WriteFile(path, []byte("old\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := WriteFileAtomic(path, []byte("new\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(data) != "new\n" {
		t.Fatalf("content = %q, want %q", data, "new\n")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat file: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestWriteFileAtomicLeavesSiblingTmpFileAlone(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "pyproject.toml")
	sibling := path + ".tmp"
	if err := os.WriteFile(sibling, []byte("user data\n"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	if err := WriteFileAtomic(path, []byte("new\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic returned error: %v", err)
	}

	data, err := os.ReadFile(sibling)
	if err != nil {
		t.Fatalf("sibling should survive: %v", err)
	}
	if string(data) != "user data\n" {
		t.Fatalf("sibling content = %q, want user data", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("directory should hold only the file and its sibling, got %d entries", len(entries))
	}
}

func TestWriteFileAtomicWritesThroughSymlink(t *testing.T) {
	t.Parallel()

	realDir := t.TempDir()
	linkDir := t.TempDir()
	target := filepath.Join(realDir, "pyproject.toml")
	link := filepath.Join(linkDir, "pyproject.toml")
	if err := os.WriteFile(target, []byte("old\n"), 0o600); err != nil {
		t.Fatalf("write target: %v", err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if err := WriteFileAtomic(link, []byte("new\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic returned error: %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatalf("lstat link: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Fatal("link should still be a symlink")
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if string(data) != "new\n" {
		t.Fatalf("target content = %q, want %q", data, "new\n")
	}
	targetInfo, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat target: %v", err)
	}
	if targetInfo.Mode().Perm() != 0o600 {
		t.Fatalf("target mode = %v, want 0600", targetInfo.Mode().Perm())
	}
}

func TestWriteFileAtomicCreatesMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "new.toml")
	if err := WriteFileAtomic(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file should exist: %v", err)
	}
}

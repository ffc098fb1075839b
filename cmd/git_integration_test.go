package cmd

import (
	"os/exec"
	"strings"
	"testing"
)

// initRepo creates a git repository holding pyproject.toml as an
// untracked file.
func initRepo(t *testing.T, body string) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := writeProject(t, body)
	gitCmd(t, dir, "init", "--quiet")
	gitCmd(t, dir, "config", "user.name", "pyname test")
	gitCmd(t, dir, "config", "user.email", "pyname@example.com")
	gitCmd(t, dir, "config", "commit.gpgsign", "false")
	return dir
}

func gitCmd(t *testing.T, dir string, args ...string) string {
	t.Helper()

	command := exec.Command("git", append([]string{"-C", dir}, args...)...)
	output, err := command.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, output)
	}
	return string(output)
}

func TestStatusAndCommitAgainstGit(t *testing.T) {
	t.Parallel()

	dir := initRepo(t, "[project]\nname = \"old-name\"\n")

	out, err := run(t, dir, nil, "status")
	if err != nil {
		t.Fatalf("status returned error: %v", err)
	}
	if !strings.Contains(out.logs, "should be committed") {
		t.Fatalf("untracked file should need a commit, got %q", out.logs)
	}

	gitCmd(t, dir, "add", "pyproject.toml")
	gitCmd(t, dir, "commit", "--quiet", "--message", "initial")

	out, err = run(t, dir, nil, "status")
	if err != nil {
		t.Fatalf("status returned error: %v", err)
	}
	if !strings.Contains(out.logs, "is up to date") {
		t.Fatalf("committed file should be up to date, got %q", out.logs)
	}

	if _, err := run(t, dir, nil, "rename", "--no-dry-run", "new-name"); err != nil {
		t.Fatalf("rename returned error: %v", err)
	}
	out, err = run(t, dir, nil, "status")
	if err != nil {
		t.Fatalf("status returned error: %v", err)
	}
	if !strings.Contains(out.logs, "should be committed") {
		t.Fatalf("renamed file should need a commit, got %q", out.logs)
	}

	if _, err := run(t, dir, nil, "commit"); err != nil {
		t.Fatalf("dry-run commit returned error: %v", err)
	}
	if log := gitCmd(t, dir, "log", "--format=%s"); strings.Contains(log, "Updating pyproject.toml") {
		t.Fatalf("dry-run commit must not create a commit, log:\n%s", log)
	}

	if _, err := run(t, dir, nil, "commit", "--no-dry-run"); err != nil {
		t.Fatalf("commit returned error: %v", err)
	}
	if log := gitCmd(t, dir, "log", "--format=%s"); !strings.Contains(log, "Updating pyproject.toml") {
		t.Fatalf("commit missing from log:\n%s", log)
	}

	out, err = run(t, dir, nil, "status")
	if err != nil {
		t.Fatalf("status returned error: %v", err)
	}
	if !strings.Contains(out.logs, "is up to date") {
		t.Fatalf("file should be up to date after commit, got %q", out.logs)
	}
}

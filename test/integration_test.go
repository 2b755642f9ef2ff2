// ABOUTME: Integration tests for pulse CLI.
// ABOUTME: Tests full workflow from CLI commands.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	pulseBinary := filepath.Join(projectRoot, "pulse")

	buildCmd := exec.Command("go", "build", "-o", pulseBinary, "./cmd/pulse")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(pulseBinary)

	// Point both data and config at a temp dir
	tmpDir := t.TempDir()

	run := func(args ...string) (string, error) {
		cmd := exec.Command(pulseBinary, args...)
		cmd.Env = append(os.Environ(),
			"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
			"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Test calculating a zone
	output, err := run("calc", "aerobic", "30", "60")
	if err != nil {
		t.Fatalf("Failed to calc: %v\n%s", err, output)
	}
	if !strings.Contains(output, "138-151") {
		t.Errorf("Expected '138-151' in output, got: %s", output)
	}
	if !strings.Contains(output, "saved as #1") {
		t.Errorf("Expected 'saved as #1' in output, got: %s", output)
	}

	// Test rejecting out-of-range input
	output, err = run("calc", "aerobic", "11", "60")
	if err == nil {
		t.Errorf("Expected error for age 11, got output: %s", output)
	}

	// Test dry-run does not persist
	output, err = run("calc", "tempo", "40", "55", "--dry-run")
	if err != nil {
		t.Fatalf("Failed to calc --dry-run: %v\n%s", err, output)
	}
	if strings.Contains(output, "saved as") {
		t.Errorf("dry-run should not save, got: %s", output)
	}

	// Test history
	output, err = run("history")
	if err != nil {
		t.Fatalf("Failed to show history: %v\n%s", err, output)
	}
	if !strings.Contains(output, "aerobic") {
		t.Errorf("Expected 'aerobic' in history output, got: %s", output)
	}
	if strings.Contains(output, "tempo") {
		t.Errorf("dry-run calculation leaked into history: %s", output)
	}
	if !strings.Contains(output, "Resting HR: min 60  avg 60  max 60") {
		t.Errorf("Expected resting HR summary, got: %s", output)
	}

	// Test last
	output, err = run("last")
	if err != nil {
		t.Fatalf("Failed to show last: %v\n%s", err, output)
	}
	if !strings.Contains(output, "138-151") {
		t.Errorf("Expected '138-151' in last output, got: %s", output)
	}

	// Test settings
	output, err = run("settings", "set", "analytics", "off")
	if err != nil {
		t.Fatalf("Failed to set setting: %v\n%s", err, output)
	}
	output, err = run("settings", "show")
	if err != nil {
		t.Fatalf("Failed to show settings: %v\n%s", err, output)
	}
	if !strings.Contains(output, "analytics: off") {
		t.Errorf("Expected 'analytics: off', got: %s", output)
	}

	// Test profile
	output, err = run("profile", "set", "--name", "Anna", "--age", "30")
	if err != nil {
		t.Fatalf("Failed to set profile: %v\n%s", err, output)
	}
	output, err = run("profile", "show")
	if err != nil {
		t.Fatalf("Failed to show profile: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Anna") {
		t.Errorf("Expected 'Anna' in profile output, got: %s", output)
	}

	// Test export
	output, err = run("export", "json")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "aerobic") {
		t.Errorf("Expected 'aerobic' in export output, got: %s", output)
	}

	// Test delete, then delete again
	output, err = run("delete", "1")
	if err != nil {
		t.Fatalf("Failed to delete: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Deleted calculation 1") {
		t.Errorf("Expected deletion message, got: %s", output)
	}
	output, err = run("delete", "1")
	if err != nil {
		t.Fatalf("Second delete should not fail: %v\n%s", err, output)
	}
	if !strings.Contains(output, "No calculation with id 1") {
		t.Errorf("Expected soft not-found message, got: %s", output)
	}

	// Test zone table
	output, err = run("zones")
	if err != nil {
		t.Fatalf("Failed to show zones: %v\n%s", err, output)
	}
	if !strings.Contains(output, "recovery") || !strings.Contains(output, "maximal") {
		t.Errorf("Expected full zone table, got: %s", output)
	}
}

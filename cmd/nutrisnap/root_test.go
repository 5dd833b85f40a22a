package nutrisnap

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--db", dbPath}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrisnap.db")
	for i := 0; i < 2; i++ {
		if _, err := runCommand(t, path, "init"); err != nil {
			t.Fatalf("init run %d failed: %v", i+1, err)
		}
	}
}

func TestOnboardThenProfileShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrisnap.db")

	out, err := runCommand(t, path, "onboard",
		"--name", "Maya", "--age", "25", "--gender", "male",
		"--weight", "70", "--target-weight", "65", "--goal", "weight-loss")
	if err != nil {
		t.Fatalf("onboard: %v", err)
	}
	if !strings.Contains(out, "2046 kcal") {
		t.Fatalf("expected onboarding estimate 2046 kcal in output, got:\n%s", out)
	}

	// Onboarding twice without --force is rejected.
	if _, err := runCommand(t, path, "onboard",
		"--name", "Maya", "--age", "25", "--gender", "male",
		"--weight", "70", "--target-weight", "65", "--goal", "weight-loss"); err == nil {
		t.Fatalf("expected second onboard to fail without --force")
	}

	out, err = runCommand(t, path, "profile", "show")
	if err != nil {
		t.Fatalf("profile show: %v", err)
	}
	for _, want := range []string{"Maya", "Weight Loss", "Moderately Active", "Onboarded: true"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in profile output, got:\n%s", want, out)
		}
	}
}

func TestWaterCommandsClampAtZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrisnap.db")

	if _, err := runCommand(t, path, "water", "add"); err != nil {
		t.Fatalf("water add: %v", err)
	}
	out, err := runCommand(t, path, "water", "sub", "500")
	if err != nil {
		t.Fatalf("water sub: %v", err)
	}
	if !strings.Contains(out, "Water: 0 /") {
		t.Fatalf("expected clamp at 0 ml, got:\n%s", out)
	}
}

func TestLogAddAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrisnap.db")

	if _, err := runCommand(t, path, "log", "add",
		"--name", "Poha", "--calories", "250", "--protein", "6"); err != nil {
		t.Fatalf("log add: %v", err)
	}
	out, err := runCommand(t, path, "log", "list")
	if err != nil {
		t.Fatalf("log list: %v", err)
	}
	if !strings.Contains(out, "Poha") || !strings.Contains(out, "250") {
		t.Fatalf("expected logged meal in output, got:\n%s", out)
	}
}

func TestBMICommandWithExplicitInputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrisnap.db")

	out, err := runCommand(t, path, "bmi", "--weight", "78", "--height", "182")
	if err != nil {
		t.Fatalf("bmi: %v", err)
	}
	if !strings.Contains(out, "23.5") || !strings.Contains(out, "Healthy Weight") {
		t.Fatalf("expected BMI 23.5 Healthy Weight, got:\n%s", out)
	}
}

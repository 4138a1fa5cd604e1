package ampbench

import (
	"os"
	"path/filepath"
	"testing"
)

// coarseAmplification keeps plot tests fast: the figure does not need the
// quadrature-grade 1e-3 sampling.
func coarseAmplification(t *testing.T) AmplificationResult {
	t.Helper()

	cfg := DefaultAmplificationConfig()
	cfg.Integrator.MaxStep = 0.01
	result, err := RunAmplification(cfg)
	if err != nil {
		t.Fatalf("RunAmplification failed: %v", err)
	}
	return result
}

// TestPlotAmplification verifies the trajectory figure builds with both
// legend entries.
func TestPlotAmplification(t *testing.T) {
	p, err := PlotAmplification(coarseAmplification(t))
	if err != nil {
		t.Fatalf("PlotAmplification failed: %v", err)
	}
	if p.Title.Text != "Balanced amplification" {
		t.Errorf("Unexpected title: %q", p.Title.Text)
	}
}

// TestSaveAmplification verifies the figure renders to PNG.
func TestSaveAmplification(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balanced.png")
	if err := SaveAmplification(coarseAmplification(t), path); err != nil {
		t.Fatalf("SaveAmplification failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Figure not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Figure file is empty")
	}
	t.Logf("✓ %s: %d bytes", path, info.Size())
}

// TestSaveHebbian verifies the closed-form figure renders to PNG.
func TestSaveHebbian(t *testing.T) {
	cfg := DefaultHebbianConfig()
	cfg.Step = 0.01
	result, err := RunHebbian(cfg)
	if err != nil {
		t.Fatalf("RunHebbian failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "hebbian.png")
	if err := SaveHebbian(result, path); err != nil {
		t.Fatalf("SaveHebbian failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Figure not written: %v", err)
	}
}

package ampbench

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	baselineColor  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	amplifiedColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// xys converts a trajectory to plotter points of f(sample) against time.
func xys(tr Trajectory, f func(Sample) float64) plotter.XYs {
	pts := make(plotter.XYs, len(tr))
	for i, s := range tr {
		pts[i].X = s.T
		pts[i].Y = f(s)
	}
	return pts
}

// comparisonPlot builds a line chart of the two combined signals with the
// "1x" / "4x" legend both figures share.
func comparisonPlot(title, xLabel string, baseline, amplified Trajectory) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "response"
	p.Legend.Top = true

	base, err := plotter.NewLine(xys(baseline, PopulationSum))
	if err != nil {
		return nil, err
	}
	base.Color = baselineColor

	amp, err := plotter.NewLine(xys(amplified, PopulationSum))
	if err != nil {
		return nil, err
	}
	amp.Color = amplifiedColor

	p.Add(base, amp)
	p.Legend.Add("1x amplification", base)
	p.Legend.Add("4x amplification", amp)
	return p, nil
}

// PlotAmplification renders the balanced-amplification trajectory figure:
// y(t) = r_E + r_I for the w = 0 and w = w_b runs.
func PlotAmplification(res AmplificationResult) (*plot.Plot, error) {
	return comparisonPlot("Balanced amplification", "time (τ)", res.Baseline, res.Amplified)
}

// PlotHebbian renders the closed-form comparison figure.
func PlotHebbian(res HebbianResult) (*plot.Plot, error) {
	return comparisonPlot("Hebbian amplification", "time", res.Baseline, res.Amplified)
}

// SaveAmplification writes the trajectory figure to path (format from the
// extension: .png, .svg, .pdf, ...).
func SaveAmplification(res AmplificationResult, path string) error {
	p, err := PlotAmplification(res)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// SaveHebbian writes the closed-form figure to path.
func SaveHebbian(res HebbianResult, path string) error {
	p, err := PlotHebbian(res)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

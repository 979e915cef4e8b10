package stats

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/yumyai/cgcfinder/pkg/cgc"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrNoClusters = errors.New("no clusters to plot")

// IntegerTicks labels every whole number on an axis.
type IntegerTicks struct{}

func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i++ {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%d", i),
		})
	}
	return ticks
}

// WriteHistogramSVG draws the genes-per-cluster distribution of all and of
// filtered clusters as SVG.
func WriteHistogramSVG(w io.Writer, res cgc.Result) error {
	if len(res.Clusters) == 0 {
		return ErrNoClusters
	}

	p := plot.New()
	p.Title.Text = "Genes per CAZyme Gene Cluster"
	p.X.Label.Text = "Genes in cluster"
	p.Y.Label.Text = "Clusters"
	p.X.Tick.Marker = IntegerTicks{}
	p.Legend.Top = true

	all := countsToXYs(GeneCounts(res.Clusters))
	allLine, err := plotter.NewLine(all)
	if err != nil {
		return err
	}
	allLine.LineStyle.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	allLine.LineStyle.Width = vg.Points(2)
	p.Add(allLine)
	p.Legend.Add("All clusters", allLine)

	if len(res.Filtered) > 0 {
		kept := countsToXYs(GeneCounts(res.Filtered))
		keptLine, err := plotter.NewLine(kept)
		if err != nil {
			return err
		}
		keptLine.LineStyle.Color = color.RGBA{R: 200, G: 100, B: 100, A: 255}
		keptLine.LineStyle.Width = vg.Points(2)
		keptLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(keptLine)
		p.Legend.Add("Base pair filtered", keptLine)
	}

	writer, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}

// WriteHistogramFile writes the SVG histogram to path.
func WriteHistogramFile(path string, res cgc.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteHistogramSVG(f, res)
}

// countsToXYs bins integer counts into one point per value from the smallest
// to the largest count.
func countsToXYs(counts []float64) plotter.XYs {
	minCount, maxCount := counts[0], counts[0]
	for _, c := range counts {
		minCount = math.Min(minCount, c)
		maxCount = math.Max(maxCount, c)
	}

	n := int(maxCount-minCount) + 1
	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i].X = minCount + float64(i)
	}
	for _, c := range counts {
		pts[int(c-minCount)].Y++
	}
	return pts
}

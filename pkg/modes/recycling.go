package modes

import (
	"github.com/jchamness/batch-annotator/pkg/annotate"
)

// Drawing settings for the nutrient-recycling comparison plates.
const (
	RecyclingLabelFontPt = 100
	RecyclingLineWidth   = 10
)

// RecyclingRegionSet outlines the eight root zones compared in the
// recycling experiment. Listed order is preserved when drawing; it only
// affects which label wins on overlap.
var RecyclingRegionSet = []annotate.Region{
	{X: 1050, Y: 144, W: 930, H: 882, Label: "1-Recycling", LabelX: 1220, LabelY: 300},
	{X: 2046, Y: 588, W: 840, H: 1026, Label: "1-Unrecycled", LabelX: 2118, LabelY: 768},
	{X: 3048, Y: 144, W: 1296, H: 948, Label: "2-Unrecycled", LabelX: 3400, LabelY: 310},
	{X: 3012, Y: 1266, W: 1230, H: 936, Label: "2-Recycling", LabelX: 3640, LabelY: 1420},
	{X: 2826, Y: 2292, W: 1092, H: 690, Label: "3-Recycling", LabelX: 2910, LabelY: 2950},
	{X: 2478, Y: 3084, W: 1374, H: 816, Label: "3-Unrecycled", LabelX: 3075, LabelY: 3860},
	{X: 4026, Y: 2430, W: 786, H: 912, Label: "4-Unrecycled", LabelX: 4100, LabelY: 3300},
	{X: 4950, Y: 2856, W: 900, H: 1056, Label: "4-Recycling", LabelX: 5160, LabelY: 3000},
}

// RecyclingRegions outlines and labels the eight fixed regions of interest
// on a recycling-comparison frame after the standard normalize/denoise
// chain.
func RecyclingRegions(opts Options, inputDir, outputDir, fileName string) error {
	opts = opts.withDefaults()
	img, err := prepare(inputPathOf(inputDir, fileName))
	if err != nil {
		return err
	}
	c := annotate.NewCanvas(img)
	c.SetLineWidth(RecyclingLineWidth)
	if err := c.SetFontSize(RecyclingLabelFontPt); err != nil {
		return err
	}
	if err := c.DrawRegions(RecyclingRegionSet); err != nil {
		return err
	}
	return export(c.Image(), opts, outputDir, fileName)
}

package modes

import (
	"github.com/jchamness/batch-annotator/pkg/annotate"
)

// DroughtLabelFontPt is the label size for the drought-response plates.
const DroughtLabelFontPt = 150

// DroughtLabelSet names the treatment group and watering condition in each
// plate quadrant. Coordinates are fixed for the camera rig's framing and
// are not derived from image content.
var DroughtLabelSet = []annotate.TextLabel{
	{Text: "+ control\nwatered", X: 270, Y: 810},
	{Text: "+ control\ndesiccated", X: 1800, Y: 3270},
	{Text: "rab18\nwatered", X: 4800, Y: 1000},
	{Text: "rab18\ndesiccated", X: 4900, Y: 3000},
}

// DroughtLabels stamps the four quadrant labels onto a drought-response
// frame after the standard normalize/denoise chain.
func DroughtLabels(opts Options, inputDir, outputDir, fileName string) error {
	opts = opts.withDefaults()
	img, err := prepare(inputPathOf(inputDir, fileName))
	if err != nil {
		return err
	}
	c := annotate.NewCanvas(img)
	if err := c.SetFontSize(DroughtLabelFontPt); err != nil {
		return err
	}
	for _, l := range DroughtLabelSet {
		if err := c.DrawLabel(l); err != nil {
			return err
		}
	}
	return export(c.Image(), opts, outputDir, fileName)
}

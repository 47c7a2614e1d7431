package jestsay

// Options bundles everything a render needs beyond the art and the quip.
type Options struct {
	Region Region
	Align  Align
	Color  *RGB // nil keeps the art's foreground under the text
	Bold   bool
}

// Say runs the full pipeline: parse the art, lay out the quip, composite it
// into the region and serialize the result. It is a pure function; the same
// inputs always produce the same bytes.
func Say(art []byte, quip string, opts Options) []byte {
	canvas := Parse(art)
	block := LayoutText(quip, opts.Region.Width, opts.Region.Height, opts.Align)
	Overlay(canvas, opts.Region, block, OverlayStyle{Color: opts.Color, Bold: opts.Bold})
	return Render(canvas)
}

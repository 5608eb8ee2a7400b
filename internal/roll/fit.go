package roll

import "image"

// Fit computes where an image with natural size (imgW, imgH) lands in
// a target of size (w, h). An image larger than the target shrinks so
// the more constrained dimension fits exactly; smaller images keep
// their natural size — no upscaling. The placement is centered, with
// odd remainders biased toward the top left.
func Fit(imgW, imgH, w, h int) image.Rectangle {
	if imgW < 1 || imgH < 1 || w < 1 || h < 1 {
		return image.Rectangle{}
	}
	pw, ph := imgW, imgH
	if imgW > w || imgH > h {
		// Equivalent to dividing both sides by max(imgW/w, imgH/h)
		// with truncation, but exact in integers.
		if imgW*h >= imgH*w {
			pw, ph = w, imgH*w/imgW
		} else {
			pw, ph = imgW*h/imgH, h
		}
	}
	x := (w - pw) / 2
	y := (h - ph) / 2
	return image.Rect(x, y, x+pw, y+ph)
}

package roll

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name             string
		imgW, imgH, w, h int
		want             image.Rectangle
	}{
		{
			name: "wide overflow governed by width",
			imgW: 2000, imgH: 1000, w: 1200, h: 900,
			want: image.Rect(0, 150, 1200, 750), // 1200x600 centered
		},
		{
			name: "fits, centered at natural size",
			imgW: 800, imgH: 600, w: 1200, h: 900,
			want: image.Rect(200, 150, 1000, 750),
		},
		{
			name: "tall overflow governed by height",
			imgW: 1000, imgH: 2000, w: 1200, h: 900,
			want: image.Rect(375, 0, 825, 900), // 450x900 centered
		},
		{
			name: "exact fit unchanged",
			imgW: 1200, imgH: 900, w: 1200, h: 900,
			want: image.Rect(0, 0, 1200, 900),
		},
		{
			name: "small image never upscaled",
			imgW: 10, imgH: 10, w: 1200, h: 900,
			want: image.Rect(595, 445, 605, 455),
		},
		{
			name: "odd remainder biases top left",
			imgW: 3, imgH: 3, w: 4, h: 4,
			want: image.Rect(0, 0, 3, 3),
		},
		{
			name: "overflow in both dimensions",
			imgW: 2400, imgH: 1800, w: 1200, h: 900,
			want: image.Rect(0, 0, 1200, 900),
		},
		{
			name: "degenerate target",
			imgW: 100, imgH: 100, w: 0, h: 900,
			want: image.Rectangle{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Fit(tc.imgW, tc.imgH, tc.w, tc.h)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Fit(%d, %d, %d, %d) mismatch (-want +got):\n%s",
					tc.imgW, tc.imgH, tc.w, tc.h, diff)
			}
		})
	}
}

// Package ui binds the image roll to an Ebitengine window.
package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"imgroll/internal/roll"
	"imgroll/internal/scan"
	"imgroll/internal/service"
)

// Viewer displays the current image of a roll, scaled and centered to
// the window. It owns the single live texture; the roller decides when
// that texture is stale.
type Viewer struct {
	roller *roll.Roller
	svc    *service.ImageService
	log    zerolog.Logger

	texture   *ebiten.Image
	discarded *ebiten.Image // replaced texture, freed at the top of the next Update

	// titleDirty is set after user-driven rolls and drops; pure
	// redraws (resizes) leave the title alone.
	titleDirty bool

	infoVisible bool
	info        *service.ImageInfo // metadata for the current image, nil when unknown

	slideshowActive   bool
	slideshowInterval time.Duration
	slideshowTimer    *time.Timer
}

// NewViewer creates a Viewer over the given roller.
func NewViewer(roller *roll.Roller, svc *service.ImageService, log zerolog.Logger, interval time.Duration) *Viewer {
	return &Viewer{
		roller:            roller,
		svc:               svc,
		log:               log,
		titleDirty:        true, // title the window once the first image loads
		slideshowInterval: interval,
	}
}

func (v *Viewer) Update() error {
	// Deallocate the texture that was replaced in the previous frame.
	// This is done at the start of the frame to ensure it's not in use by Draw.
	if v.discarded != nil {
		v.discarded.Deallocate()
		v.discarded = nil
	}

	input := PollInput()
	if input.Quit {
		return ebiten.Termination
	}
	if input.ToggleFullscreen {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if input.ToggleInfo {
		v.infoVisible = !v.infoVisible
	}
	if input.ToggleSlideshow {
		v.ToggleSlideshow()
	}

	if files := ebiten.DroppedFiles(); files != nil {
		v.handleDrop(files)
	}

	if input.NextImage {
		v.navigate(roll.Next)
		v.resetSlideshowTimer()
	}
	if input.PrevImage {
		v.navigate(roll.Prev)
		v.resetSlideshowTimer()
	}

	if v.slideshowActive && v.slideshowTimer != nil {
		select {
		case <-v.slideshowTimer.C:
			v.navigate(roll.Next)
			v.slideshowTimer.Reset(v.slideshowInterval)
		default:
			// Timer has not fired
		}
	}

	if v.roller.NeedsLoad() {
		if err := v.loadCurrent(); err != nil {
			// A roll member that cannot be decoded is an unrecoverable
			// input. RunGame unwinds with this error.
			return err
		}
	}

	if v.titleDirty {
		if name := v.roller.CurrentName(); name != "" {
			ebiten.SetWindowTitle(name)
		}
		v.titleDirty = false
	}
	return nil
}

// navigate moves the roll one step and schedules a title update.
func (v *Viewer) navigate(d roll.Direction) {
	if v.roller.Len() == 0 {
		return
	}
	v.roller.Advance(d)
	v.titleDirty = true
}

// handleDrop replaces the roll with the images delivered by a
// drag-and-drop. A drop that matches nothing keeps the current roll.
func (v *Viewer) handleDrop(files fs.FS) {
	items, selected, err := collectDrop(files)
	if err != nil {
		v.log.Warn().Err(err).Msg("reading dropped files")
		return
	}
	if len(items) == 0 {
		v.log.Warn().Msg("drop matched no images, keeping current roll")
		return
	}
	v.roller.Reset(items, selected)
	v.titleDirty = true
	v.resetSlideshowTimer()
	v.log.Info().Int("count", len(items)).Msg("roll replaced from drop")
}

// loadCurrent decodes the current image into a fresh texture and parks
// the old one for deallocation next frame.
func (v *Viewer) loadCurrent() error {
	item, ok := v.roller.Current()
	if !ok {
		return nil
	}
	img, err := loadImage(item)
	if err != nil {
		name := item.Path
		if name == "" {
			name = item.Name
		}
		return fmt.Errorf("load %s: %w", name, err)
	}
	if v.texture != nil {
		v.discarded = v.texture
	}
	v.texture = img
	v.roller.MarkLoaded()

	v.info = nil
	if item.Path != "" {
		info, err := v.svc.GetImageInfo(item.Path)
		if err != nil {
			v.log.Debug().Err(err).Str("path", item.Path).Msg("no image info")
		} else {
			v.info = info
		}
	}
	return nil
}

// loadImage decodes an item from its path, or from its in-memory bytes
// for drop-sourced items.
func loadImage(item scan.Item) (*ebiten.Image, error) {
	if item.Path != "" {
		img, _, err := ebitenutil.NewImageFromFile(item.Path)
		return img, err
	}
	src, _, err := image.Decode(bytes.NewReader(item.Data))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(src), nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if v.texture != nil {
		b := screen.Bounds()
		iw := v.texture.Bounds().Dx()
		ih := v.texture.Bounds().Dy()
		dst := roll.Fit(iw, ih, b.Dx(), b.Dy())
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterLinear
		op.GeoM.Scale(float64(dst.Dx())/float64(iw), float64(dst.Dy())/float64(ih))
		op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
		screen.DrawImage(v.texture, op)
	}
	if v.infoVisible {
		v.drawInfo(screen)
	}
}

// drawInfo prints the current image's metadata in the top left corner.
func (v *Viewer) drawInfo(screen *ebiten.Image) {
	if v.roller.Len() == 0 {
		ebitenutil.DebugPrint(screen, "no images loaded")
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d/%d)", v.roller.CurrentName(), v.roller.Index()+1, v.roller.Len())
	if v.slideshowActive {
		b.WriteString(" (Slideshow ON)")
	}
	if v.info != nil {
		fmt.Fprintf(&b, "\n%dx%d px, %d bytes\n%s",
			v.info.Width, v.info.Height, v.info.Size,
			v.info.ModTime.Format(time.RFC1123))
		keys := make([]string, 0, len(v.info.EXIFData))
		for k := range v.info.EXIFData {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "\n%s: %s", k, v.info.EXIFData[k])
		}
	}
	ebitenutil.DebugPrint(screen, b.String())
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// A 1:1 pixel mapping keeps the placement math working on the real
	// window resolution, and makes resizes pure redraws.
	return outsideWidth, outsideHeight
}

// ToggleSlideshow turns the auto-advance mode on or off.
func (v *Viewer) ToggleSlideshow() {
	v.slideshowActive = !v.slideshowActive
	if v.slideshowActive {
		if v.slideshowTimer == nil {
			v.slideshowTimer = time.NewTimer(v.slideshowInterval)
		} else {
			v.slideshowTimer.Reset(v.slideshowInterval)
		}
	} else if v.slideshowTimer != nil {
		v.slideshowTimer.Stop()
	}
}

// resetSlideshowTimer restarts the countdown after a manual roll so
// the slideshow does not skip ahead right after the user moved.
func (v *Viewer) resetSlideshowTimer() {
	if v.slideshowActive && v.slideshowTimer != nil {
		v.slideshowTimer.Reset(v.slideshowInterval)
	}
}

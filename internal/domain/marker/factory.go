// Package marker builds map markers for custom prospect assets and wires
// their info windows: heading, coordinate readout, clipboard copy, and an
// external map-search link.
package marker

import (
	"context"
	"errors"
	"time"

	"github.com/landsight/prospect-api/internal/domain/model"
)

// FeedbackDelay is how long transient copy feedback stays on the button
// before reverting.
const FeedbackDelay = 2000 * time.Millisecond

const (
	copyLabel   = "Copy"
	copiedLabel = "Copied!"
	errorLabel  = "Error"
)

// Factory creates markers with bound info windows.
type Factory struct {
	// Clipboard backs the copy action. A nil clipboard surfaces as the
	// same transient "Error" feedback as a rejected write.
	Clipboard Clipboard

	// After schedules the feedback revert; defaults to time.AfterFunc.
	// Injectable so tests can fire the timer deterministically.
	After func(d time.Duration, fn func())

	// ClipboardTimeout bounds a single clipboard write.
	ClipboardTimeout time.Duration
}

// Handle is a placed marker with its click wiring attached.
type Handle struct {
	Marker Marker
	asset  *model.Asset
}

// Remove detaches the marker from its surface.
func (h *Handle) Remove() { h.Marker.Remove() }

// CreateMarker places a marker for the asset and binds a click handler that
// builds a fresh info window on every click. A missing surface or asset is a
// precondition violation, not a recoverable condition.
func (f *Factory) CreateMarker(surface MapSurface, asset *model.Asset) (*Handle, error) {
	if surface == nil {
		return nil, errors.New("map surface is required")
	}
	if asset == nil {
		return nil, errors.New("asset is required")
	}

	m, err := surface.NewMarker(f.markerOptions(asset))
	if err != nil {
		return nil, err
	}

	m.OnClick(func() {
		// Rebuilt fresh each click; content is never cached.
		win := surface.NewInfoWindow()
		win.SetContent(f.BuildContent(asset))
		win.Open(m)
	})

	return &Handle{Marker: m, asset: asset}, nil
}

// markerOptions merges caller-supplied options over the base options.
// Shallow merge; caller options win on key collision.
func (f *Factory) markerOptions(asset *model.Asset) Options {
	opts := Options{
		"position": map[string]float64{"lat": asset.Lat, "lng": asset.Lng},
		"title":    asset.DisplayTitle(),
	}
	for k, v := range asset.MarkerOptions {
		opts[k] = v
	}
	return opts
}

// BuildContent constructs the info-window content tree for an asset:
// heading, 5-decimal coordinate readout, copy button, and an external
// map-search link opened without opener/referrer leakage.
func (f *Factory) BuildContent(asset *model.Asset) *Node {
	readout := asset.CoordinateReadout()

	copyBtn := El("button").
		WithText(copyLabel).
		WithAttr("type", "button")
	copyBtn.WithClick(func() { f.copyToClipboard(copyBtn, readout) })

	link := El("a").
		WithText("Open in Google Maps").
		WithAttr("href", asset.MapsSearchURL()).
		WithAttr("target", "_blank").
		WithAttr("rel", "noopener noreferrer")

	return El("div",
		El("strong").WithText(asset.DisplayTitle()),
		El("div").WithText(readout),
		copyBtn,
		link,
	)
}

// copyToClipboard performs the copy action and surfaces the outcome only as
// transient button text. Failures never escape the click handler.
func (f *Factory) copyToClipboard(btn *Node, text string) {
	if err := f.writeClipboard(text); err != nil {
		btn.Text = errorLabel
	} else {
		btn.Text = copiedLabel
	}

	// The revert timer is not cancelled if the info window is torn down
	// before it fires; it then mutates a detached node. See DESIGN.md.
	f.schedule(FeedbackDelay, func() { btn.Text = copyLabel })
}

func (f *Factory) writeClipboard(text string) error {
	if f.Clipboard == nil {
		return errors.New("clipboard unavailable")
	}
	timeout := f.ClipboardTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return f.Clipboard.WriteText(ctx, text)
}

func (f *Factory) schedule(d time.Duration, fn func()) {
	if f.After != nil {
		f.After(d, fn)
		return
	}
	time.AfterFunc(d, fn)
}

package marker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landsight/prospect-api/internal/domain/model"
)

// --- fakes ---

type fakeMarker struct {
	click   func()
	removed bool
}

func (m *fakeMarker) OnClick(fn func()) { m.click = fn }
func (m *fakeMarker) Remove()           { m.removed = true }

type fakeInfoWindow struct {
	content *Node
	openAt  Marker
	closed  bool
}

func (w *fakeInfoWindow) SetContent(root *Node) { w.content = root }
func (w *fakeInfoWindow) Open(anchor Marker)    { w.openAt = anchor }
func (w *fakeInfoWindow) Close()                { w.closed = true }

type fakeSurface struct {
	markerOpts []Options
	markers    []*fakeMarker
	windows    []*fakeInfoWindow
	markerErr  error
}

func (s *fakeSurface) NewMarker(opts Options) (Marker, error) {
	if s.markerErr != nil {
		return nil, s.markerErr
	}
	s.markerOpts = append(s.markerOpts, opts)
	m := &fakeMarker{}
	s.markers = append(s.markers, m)
	return m, nil
}

func (s *fakeSurface) NewInfoWindow() InfoWindow {
	w := &fakeInfoWindow{}
	s.windows = append(s.windows, w)
	return w
}

type fakeClipboard struct {
	written []string
	err     error
}

func (c *fakeClipboard) WriteText(_ context.Context, text string) error {
	if c.err != nil {
		return c.err
	}
	c.written = append(c.written, text)
	return nil
}

// manualTimer captures scheduled reverts so tests can fire them on demand.
type manualTimer struct {
	delays []time.Duration
	fns    []func()
}

func (t *manualTimer) After(d time.Duration, fn func()) {
	t.delays = append(t.delays, d)
	t.fns = append(t.fns, fn)
}

func (t *manualTimer) fireAll() {
	for _, fn := range t.fns {
		fn()
	}
	t.fns = nil
}

func testAsset() *model.Asset {
	title := "Victory Plaza"
	return &model.Asset{
		ID:    "a-1",
		Title: &title,
		Lat:   32.788060,
		Lng:   -96.810110,
	}
}

func newTestFactory(clip Clipboard, timer *manualTimer) *Factory {
	return &Factory{Clipboard: clip, After: timer.After}
}

// --- tests ---

func TestCreateMarker_PreconditionViolations(t *testing.T) {
	f := &Factory{}

	_, err := f.CreateMarker(nil, testAsset())
	require.Error(t, err)

	_, err = f.CreateMarker(&fakeSurface{}, nil)
	require.Error(t, err)
}

func TestCreateMarker_AbsentMarkerOptionsIsFine(t *testing.T) {
	surface := &fakeSurface{}
	f := &Factory{}

	asset := testAsset()
	asset.MarkerOptions = nil

	h, err := f.CreateMarker(surface, asset)
	require.NoError(t, err)
	require.NotNil(t, h)

	require.Len(t, surface.markerOpts, 1)
	assert.Equal(t, "Victory Plaza", surface.markerOpts[0]["title"])
	assert.Equal(t, map[string]float64{"lat": 32.788060, "lng": -96.810110}, surface.markerOpts[0]["position"])
}

func TestCreateMarker_CallerOptionsWinOnCollision(t *testing.T) {
	surface := &fakeSurface{}
	f := &Factory{}

	asset := testAsset()
	asset.MarkerOptions = map[string]any{
		"title":     "override",
		"draggable": true,
	}

	_, err := f.CreateMarker(surface, asset)
	require.NoError(t, err)

	opts := surface.markerOpts[0]
	assert.Equal(t, "override", opts["title"])
	assert.Equal(t, true, opts["draggable"])
	// Non-colliding base options survive the merge.
	assert.NotNil(t, opts["position"])
}

func TestCreateMarker_SurfaceErrorPropagates(t *testing.T) {
	surface := &fakeSurface{markerErr: errors.New("sdk rejected marker")}
	_, err := (&Factory{}).CreateMarker(surface, testAsset())
	assert.Error(t, err)
}

func TestClick_BuildsFreshInfoWindowEveryTime(t *testing.T) {
	surface := &fakeSurface{}
	timer := &manualTimer{}
	f := newTestFactory(&fakeClipboard{}, timer)

	_, err := f.CreateMarker(surface, testAsset())
	require.NoError(t, err)
	require.NotNil(t, surface.markers[0].click)

	surface.markers[0].click()
	surface.markers[0].click()

	require.Len(t, surface.windows, 2)
	// Content trees are distinct instances, not a cached node.
	assert.NotSame(t, surface.windows[0].content, surface.windows[1].content)
	assert.Same(t, surface.markers[0], surface.windows[0].openAt.(*fakeMarker))
}

func TestBuildContent_Structure(t *testing.T) {
	f := newTestFactory(&fakeClipboard{}, &manualTimer{})
	root := f.BuildContent(testAsset())

	heading := root.Find(func(n *Node) bool { return n.Tag == "strong" })
	require.NotNil(t, heading)
	assert.Equal(t, "Victory Plaza", heading.Text)

	readout := root.Find(func(n *Node) bool { return n.Tag == "div" && n.Text != "" })
	require.NotNil(t, readout)
	assert.Equal(t, "32.78806, -96.81011", readout.Text)

	link := root.Find(func(n *Node) bool { return n.Tag == "a" })
	require.NotNil(t, link)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=32.78806,-96.81011", link.Attrs["href"])
	assert.Equal(t, "_blank", link.Attrs["target"])
	assert.Equal(t, "noopener noreferrer", link.Attrs["rel"])
}

func TestBuildContent_DefaultHeading(t *testing.T) {
	f := newTestFactory(&fakeClipboard{}, &manualTimer{})
	root := f.BuildContent(&model.Asset{Lat: 1, Lng: 2})

	heading := root.Find(func(n *Node) bool { return n.Tag == "strong" })
	require.NotNil(t, heading)
	assert.Equal(t, "Custom Asset", heading.Text)
}

func TestCopy_SuccessFeedbackRevertsAfterDelay(t *testing.T) {
	clip := &fakeClipboard{}
	timer := &manualTimer{}
	f := newTestFactory(clip, timer)

	root := f.BuildContent(testAsset())
	btn := root.Find(func(n *Node) bool { return n.Tag == "button" })
	require.NotNil(t, btn)
	assert.Equal(t, "Copy", btn.Text)

	btn.Click()
	assert.Equal(t, []string{"32.78806, -96.81011"}, clip.written)
	assert.Equal(t, "Copied!", btn.Text)
	require.Equal(t, []time.Duration{FeedbackDelay}, timer.delays)

	timer.fireAll()
	assert.Equal(t, "Copy", btn.Text)
}

func TestCopy_FailureFeedback(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("clipboard denied")}
	timer := &manualTimer{}
	f := newTestFactory(clip, timer)

	root := f.BuildContent(testAsset())
	btn := root.Find(func(n *Node) bool { return n.Tag == "button" })
	require.NotNil(t, btn)

	// Failure is surfaced only as UI text and never panics out of the
	// click handler.
	assert.NotPanics(t, func() { btn.Click() })
	assert.Equal(t, "Error", btn.Text)

	timer.fireAll()
	assert.Equal(t, "Copy", btn.Text)
}

func TestCopy_NilClipboardBehavesLikeFailure(t *testing.T) {
	timer := &manualTimer{}
	f := &Factory{After: timer.After}

	root := f.BuildContent(testAsset())
	btn := root.Find(func(n *Node) bool { return n.Tag == "button" })
	require.NotNil(t, btn)

	btn.Click()
	assert.Equal(t, "Error", btn.Text)
}

func TestHandle_Remove(t *testing.T) {
	surface := &fakeSurface{}
	h, err := (&Factory{}).CreateMarker(surface, testAsset())
	require.NoError(t, err)

	h.Remove()
	assert.True(t, surface.markers[0].removed)
}

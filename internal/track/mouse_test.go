package track

import (
	"testing"

	"chosenoffset.com/quickdraw/internal/render"
)

type fakeInput struct {
	cursorX, cursorY int
	pressed          map[render.MouseButton]bool
}

func (f *fakeInput) IsKeyPressed(render.Key) bool     { return false }
func (f *fakeInput) IsKeyJustPressed(render.Key) bool { return false }
func (f *fakeInput) GetCursorPosition() (int, int)    { return f.cursorX, f.cursorY }
func (f *fakeInput) IsMouseButtonPressed(b render.MouseButton) bool {
	return f.pressed[b]
}
func (f *fakeInput) IsMouseButtonJustPressed(render.MouseButton) bool { return false }

func TestMouseTrackerGestures(t *testing.T) {
	input := &fakeInput{pressed: map[render.MouseButton]bool{
		render.MouseButtonLeft:  true,
		render.MouseButtonRight: true,
	}}
	tr := NewMouseTracker(input, 640, 480)

	got := tr.DetectGestures(nil)
	want := Gestures{Shoot: true, Reload: true}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	input.pressed = map[render.MouseButton]bool{render.MouseButtonMiddle: true}
	got = tr.DetectGestures(nil)
	if got != (Gestures{Pause: true}) {
		t.Errorf("Expected pause gesture, got %+v", got)
	}
}

func TestMouseTrackerAimClamped(t *testing.T) {
	input := &fakeInput{cursorX: 5000, cursorY: -10}
	tr := NewMouseTracker(input, 640, 480)

	pos, ok := tr.AimPosition(nil)
	if !ok {
		t.Fatal("Expected mouse aim to always be available")
	}
	if pos != (Point{639, 0}) {
		t.Errorf("Expected clamped aim (639, 0), got (%d, %d)", pos.X, pos.Y)
	}
}

func TestMouseTrackerNoLandmarks(t *testing.T) {
	tr := NewMouseTracker(&fakeInput{}, 640, 480)
	if lms := tr.Landmarks(); lms != nil {
		t.Errorf("Expected nil landmarks from mouse tracker, got %v", lms)
	}
}

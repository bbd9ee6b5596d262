package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

// queue feeds a fixed list of events to Input.poll.
func queue(events ...sdl.Event) func() sdl.Event {
	return func() sdl.Event {
		if len(events) == 0 {
			return nil
		}
		e := events[0]
		events = events[1:]
		return e
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{
			name:  "quit",
			event: &sdl.QuitEvent{Type: sdl.QUIT},
			want:  Event{Type: EventQuit},
			ok:    true,
		},
		{
			name:  "size changed",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 600},
			want:  Event{Type: EventWindowResize, Width: 800, Height: 600},
			ok:    true,
		},
		{
			name:  "resized is ignored",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			ok:    false,
		},
		{
			name:  "window moved is ignored",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED},
			ok:    false,
		},
		{
			name:  "key down",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}},
			want:  Event{Type: EventKeyDown, Key: sdl.SCANCODE_W},
			ok:    true,
		},
		{
			name:  "key repeat",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_S}},
			want:  Event{Type: EventKeyDown, Key: sdl.SCANCODE_S},
			ok:    true,
		},
		{
			name:  "key up is ignored",
			event: &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	in := New()
	in.poll = queue(
		&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}},
		&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED},
		&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 320, Data2: 200},
	)

	if in.Update() {
		t.Error("Update reported quit without a quit event")
	}
	if len(in.Events()) != 2 {
		t.Fatalf("got %d events, want 2", len(in.Events()))
	}
	if e := in.Events()[0]; e.Type != EventKeyDown || e.Key != sdl.SCANCODE_ESCAPE {
		t.Errorf("first event: got %+v, want escape key down", e)
	}

	// The next update starts from an empty list.
	in.poll = queue(&sdl.QuitEvent{Type: sdl.QUIT})
	if !in.Update() {
		t.Error("Update should report quit")
	}
	if len(in.Events()) != 1 || in.Events()[0].Type != EventQuit {
		t.Errorf("events: got %+v", in.Events())
	}
}

func TestUserResizeYieldsOneEvent(t *testing.T) {
	in := New()
	in.poll = queue(
		&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 640, Data2: 480},
		&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 640, Data2: 480},
	)

	in.Update()

	events := in.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1: %+v", len(events), events)
	}
	want := Event{Type: EventWindowResize, Width: 640, Height: 480}
	if events[0] != want {
		t.Errorf("got %+v, want %+v", events[0], want)
	}
}

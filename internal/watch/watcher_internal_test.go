package watch

import (
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
)

func TestIsLayout(t *testing.T) {
	assert.True(t, IsLayout("deck.lay"))
	assert.True(t, IsLayout(`C:\Methods\DECK.LAY`))
	assert.False(t, IsLayout("deck.lay.bak"))
	assert.False(t, IsLayout("lay"))
	assert.False(t, IsLayout("/tmp/x.lay/notes"))
}

func TestSettled_Debounces(t *testing.T) {
	w := New(t.TempDir(), time.Second, nil, nil)
	t0 := time.Unix(1000, 0)

	w.note("b.lay", t0)
	w.note("a.lay", t0)
	w.note("c.lay", t0.Add(800*time.Millisecond))

	assert.Empty(t, w.settled(t0.Add(500*time.Millisecond)))
	assert.Equal(t, []string{"a.lay", "b.lay"}, w.settled(t0.Add(time.Second)))
	assert.Empty(t, w.settled(t0.Add(time.Second)), "settled paths are consumed")
	assert.Equal(t, []string{"c.lay"}, w.settled(t0.Add(2*time.Second)))
}

func TestSettled_LaterEventRestartsWindow(t *testing.T) {
	w := New(t.TempDir(), time.Second, nil, nil)
	t0 := time.Unix(1000, 0)

	w.note("a.lay", t0)
	w.note("a.lay", t0.Add(900*time.Millisecond))
	assert.Empty(t, w.settled(t0.Add(1500*time.Millisecond)))
	assert.Equal(t, []string{"a.lay"}, w.settled(t0.Add(1900*time.Millisecond)))
}

func TestChanged_SkipsIdenticalContent(t *testing.T) {
	w := New(t.TempDir(), 0, nil, nil)

	assert.True(t, w.changed("a.lay", []byte("one")))
	assert.False(t, w.changed("a.lay", []byte("one")))
	assert.True(t, w.changed("a.lay", []byte("two")))
	assert.True(t, w.changed("b.lay", []byte("two")))

	w.forget("a.lay")
	assert.True(t, w.changed("a.lay", []byte("two")))
}

func TestHandleEvent_FiltersAndForgets(t *testing.T) {
	w := New(t.TempDir(), 0, nil, nil)
	now := time.Unix(1000, 0)

	w.handleEvent(fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}, now)
	w.handleEvent(fsnotify.Event{Name: "deck.lay", Op: fsnotify.Chmod}, now)
	w.handleEvent(fsnotify.Event{Name: "deck.lay", Op: fsnotify.Create}, now)
	w.handleEvent(fsnotify.Event{Name: "gone.lay", Op: fsnotify.Write}, now)
	w.handleEvent(fsnotify.Event{Name: "gone.lay", Op: fsnotify.Remove}, now)

	assert.Equal(t, []string{"deck.lay"}, w.settled(now))
}

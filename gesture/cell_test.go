package gesture

import (
	"sync"
	"testing"
)

func TestCell_InitialValue(t *testing.T) {
	c := NewCell(Signals{Growth: 0.25, HandsSeen: 1})
	got := c.Load()
	if got.Growth != 0.25 || got.HandsSeen != 1 {
		t.Errorf("Load = %+v, want initial signals back", got)
	}
}

func TestCell_PublishReplaces(t *testing.T) {
	c := NewCell(Signals{})
	c.Publish(Signals{Growth: 1, CursorActive: true, CursorX: -0.5})
	got := c.Load()
	if got.Growth != 1 || !got.CursorActive || got.CursorX != -0.5 {
		t.Errorf("Load = %+v after publish", got)
	}
}

// Loads race against publishes; each load must see one whole snapshot,
// never a mix of two. Run with -race.
func TestCell_ConcurrentLoadSeesWholeSnapshot(t *testing.T) {
	c := NewCell(Signals{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			g := float64(i%2) // both fields flip together
			c.Publish(Signals{Growth: g, CursorX: g})
		}
	}()

	for i := 0; i < 10000; i++ {
		s := c.Load()
		if s.Growth != s.CursorX {
			t.Fatalf("torn snapshot: Growth=%v CursorX=%v", s.Growth, s.CursorX)
		}
	}
	wg.Wait()
}

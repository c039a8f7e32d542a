package dedupe

import (
	"fmt"
	"sync"
	"testing"
)

func TestSeenAndRecord(t *testing.T) {
	s := NewSet()

	if s.SeenAndRecord("a|b|Beta") {
		t.Error("expected first sighting to be new")
	}
	if !s.SeenAndRecord("a|b|Beta") {
		t.Error("expected second sighting to be a duplicate")
	}
	if s.SeenAndRecord("a|b|Gamma") {
		t.Error("expected different partner to be new")
	}
	if s.Size() != 2 {
		t.Errorf("expected size 2, got %d", s.Size())
	}
}

func TestConcurrentRecording(t *testing.T) {
	s := NewSet()
	const workers = 8
	const sigs = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < sigs; i++ {
				s.SeenAndRecord(fmt.Sprintf("sig-%d", i))
			}
		}()
	}
	wg.Wait()

	if s.Size() != sigs {
		t.Errorf("expected %d unique signatures, got %d", sigs, s.Size())
	}
}

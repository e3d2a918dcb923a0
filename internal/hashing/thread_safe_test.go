package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chess-search-go/internal/engine"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)
	pos := engine.NewInitialPosition()

	const numPositions = 100
	const numWorkers = 10
	perWorker := numPositions / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			start := workerID * perWorker
			for j := start; j < start+perWorker; j++ {
				detector.CheckAndAdd(pos.Copy(), j)
			}
		}(i)
	}
	wg.Wait()

	if detector.DuplicateCount() != 99 {
		t.Errorf("Expected 99 duplicates, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("Expected 1 unique, got %d", detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_DifferentPositions(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)

	fens := []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq c3 0 1",
	}

	var wg sync.WaitGroup
	for i, fen := range fens {
		pos := mustPosition(t, fen)
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			detector.CheckAndAdd(pos, idx)
		}(i)
	}
	wg.Wait()

	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != len(fens) {
		t.Errorf("Expected %d unique, got %d", len(fens), detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_IsFull(t *testing.T) {
	unlimited := NewThreadSafeDuplicateDetector(false, 0)
	unlimited.CheckAndAdd(engine.NewInitialPosition(), 0)
	if unlimited.IsFull() {
		t.Error("unlimited detector reported full")
	}

	limited := NewThreadSafeDuplicateDetector(false, 1)
	limited.CheckAndAdd(engine.NewInitialPosition(), 0)
	if !limited.IsFull() {
		t.Error("detector with capacity 1 should be full")
	}
}

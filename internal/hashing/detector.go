package hashing

import (
	"github.com/lgbarn/chess-search-go/internal/engine"
)

// DuplicateDetector tracks seen positions for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores the signatures seen under each Zobrist hash
	hashTable map[uint64][]PositionSignature
	// exactMatch also requires equal clocks
	exactMatch bool
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity    int
	size           int
	duplicateCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// Index is where the position first appeared in its batch
	Index int
	// HalfmoveClock and MoveNumber are compared only for exact matches
	HalfmoveClock uint
	MoveNumber    uint
	// FEN guards against hash collisions
	FEN string
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]PositionSignature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks whether pos has been seen and records it if not. It
// returns the index the position was first recorded under and whether pos
// is a duplicate. A full detector still reports duplicates but stores
// nothing new.
func (d *DuplicateDetector) CheckAndAdd(pos engine.Position, index int) (int, bool) {
	sig := signatureOf(pos, index)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing.Index, true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.size++
	}
	return index, false
}

// signatureOf builds the signature of a position.
func signatureOf(pos engine.Position, index int) PositionSignature {
	noClocks := pos.Copy()
	noClocks.Board.HalfmoveClock = 0
	noClocks.Board.MoveNumber = 1
	return PositionSignature{
		Hash:          PositionHash(pos),
		Index:         index,
		HalfmoveClock: pos.Board.HalfmoveClock,
		MoveNumber:    pos.Board.MoveNumber,
		FEN:           noClocks.FEN(),
	}
}

// signaturesMatch checks if two position signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash || a.FEN != b.FEN {
		return false
	}
	if d.exactMatch && (a.HalfmoveClock != b.HalfmoveClock || a.MoveNumber != b.MoveNumber) {
		return false
	}
	return true
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// Package leaderboard keeps the classic fixed-size local high score table:
// five slots, sorted descending, persisted as a small flat binary file.
// The SQLite store keeps the full history; this file is the at-a-glance
// table the game-over and scores screens show.
package leaderboard

// Size is the number of slots on the board.
const Size = 5

// NameLen is the maximum stored player name length.
const NameLen = 15

// Entry is one leaderboard slot.
type Entry struct {
	Name     string
	Score    int
	MaxCombo int
}

// Board is the fixed-size score table. The zero value is an empty board.
type Board struct {
	entries [Size]Entry
	count   int
}

// Len returns the number of filled slots.
func (b *Board) Len() int {
	return b.count
}

// Entry returns the i-th slot (0 = best).
func (b *Board) Entry(i int) Entry {
	return b.entries[i]
}

// Entries returns the filled slots in descending score order.
func (b *Board) Entries() []Entry {
	out := make([]Entry, b.count)
	copy(out, b.entries[:b.count])
	return out
}

// Qualifies reports whether a score would make the board.
func (b *Board) Qualifies(score int) bool {
	return b.count < Size || score > b.entries[Size-1].Score
}

// Add inserts an entry at its rank, shifting lower scores down; the last
// slot falls off a full board. Ties rank below existing entries. Returns
// the slot index, or -1 if the score did not qualify.
func (b *Board) Add(e Entry) int {
	if len(e.Name) > NameLen {
		e.Name = e.Name[:NameLen]
	}

	pos := b.count
	for i := 0; i < b.count; i++ {
		if e.Score > b.entries[i].Score {
			pos = i
			break
		}
	}
	if pos >= Size {
		return -1
	}

	last := b.count
	if last >= Size {
		last = Size - 1
	}
	for i := last; i > pos; i-- {
		b.entries[i] = b.entries[i-1]
	}
	b.entries[pos] = e

	if b.count < Size {
		b.count++
	}
	return pos
}

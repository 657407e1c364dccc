package leaderboard

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// The on-disk format is five fixed-width little-endian records:
// 16 name bytes (NUL padded), int32 score, int32 max combo.
const recordSize = NameLen + 1 + 4 + 4

type record struct {
	Name     [NameLen + 1]byte
	Score    int32
	MaxCombo int32
}

// Load reads the board from path. A missing file is an empty board, not an
// error; a truncated or oversized file is corrupt.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Board{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot read %s: %w", path, err)
	}

	if len(data)%recordSize != 0 || len(data) > Size*recordSize {
		return nil, fmt.Errorf("leaderboard: %s is corrupt (%d bytes)", path, len(data))
	}

	b := &Board{}
	r := bytes.NewReader(data)
	for {
		var rec record
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("leaderboard: cannot decode %s: %w", path, err)
		}

		name := rec.Name[:]
		if i := bytes.IndexByte(name, 0); i >= 0 {
			name = name[:i]
		}
		if len(name) == 0 && rec.Score == 0 && rec.MaxCombo == 0 {
			continue
		}

		b.entries[b.count] = Entry{
			Name:     string(name),
			Score:    int(rec.Score),
			MaxCombo: int(rec.MaxCombo),
		}
		b.count++
	}

	return b, nil
}

// Save writes the board to path, creating parent directories as needed.
// All five slots are written so the file size stays fixed.
func Save(path string, b *Board) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("leaderboard: cannot create directory %s: %w", dir, err)
		}
	}

	var buf bytes.Buffer
	for i := 0; i < Size; i++ {
		var rec record
		if i < b.count {
			e := b.entries[i]
			copy(rec.Name[:NameLen], e.Name)
			rec.Score = int32(e.Score)
			rec.MaxCombo = int32(e.MaxCombo)
		}
		if err := binary.Write(&buf, binary.LittleEndian, rec); err != nil {
			return fmt.Errorf("leaderboard: cannot encode entry %d: %w", i, err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("leaderboard: cannot write %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns the conventional board location under the user's
// home directory, falling back to the working directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "snake_scores.dat"
	}
	return filepath.Join(home, ".snake-engine", "snake_scores.dat")
}

package pipeline

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"

	"heightmapper/internal/heightfield"
)

// Summary describes the raw grid of a field.
type Summary struct {
	Min, Max uint16
	Mean     float64
	// Checksum is the hex SHA-256 of the little-endian raw grid.
	Checksum string
}

// Summarize computes height statistics and a checksum of f's raw grid.
func Summarize(f *heightfield.Field) Summary {
	cells := f.Grid().Cells()
	s := Summary{Min: math.MaxUint16}
	h := sha256.New()
	var buf [2]byte
	var total float64
	for _, v := range cells {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		total += float64(v)
		binary.LittleEndian.PutUint16(buf[:], v)
		h.Write(buf[:])
	}
	if len(cells) > 0 {
		s.Mean = total / float64(len(cells))
	}
	s.Checksum = hex.EncodeToString(h.Sum(nil))
	return s
}

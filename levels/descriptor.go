package levels

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	ErrMalformed    = errors.New("levels: malformed descriptor")
	ErrUnknownBlock = errors.New("levels: unknown block")
)

// Purpose tags a record with the role its block plays in a level.
type Purpose int

const (
	PurposeHazard Purpose = iota
	PurposeGround
	PurposeClipped
)

func (p Purpose) Valid() bool {
	return p >= PurposeHazard && p <= PurposeClipped
}

// Record is one placed block. Position is the block centre in world units.
type Record struct {
	BlockID  int     `json:"block_id"`
	Name     string  `json:"name"`
	Purpose  Purpose `json:"purpose"`
	Position [2]int  `json:"position"`
}

// Descriptor is an ordered list of records; spawn order follows it.
type Descriptor []Record

// BlockSet reports whether a block id is known.
type BlockSet interface {
	Has(id int) bool
}

type rawRecord struct {
	BlockID  *int          `json:"block_id"`
	Name     string        `json:"name"`
	Purpose  *int          `json:"purpose"`
	Position []json.Number `json:"position"`
}

// Parse decodes a descriptor. Unknown fields, missing ids, purposes or
// positions, and positions that are not exactly two integers are rejected
// with ErrMalformed. Purpose range is checked by Validate.
func Parse(data []byte) (Descriptor, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	dec.UseNumber()

	var raw []rawRecord
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformed)
	}

	out := make(Descriptor, 0, len(raw))
	for i, r := range raw {
		if r.BlockID == nil {
			return nil, fmt.Errorf("%w: record %d: missing block_id", ErrMalformed, i)
		}
		if r.Purpose == nil {
			return nil, fmt.Errorf("%w: record %d: missing purpose", ErrMalformed, i)
		}
		if len(r.Position) != 2 {
			return nil, fmt.Errorf("%w: record %d: position needs 2 coordinates, got %d", ErrMalformed, i, len(r.Position))
		}
		var pos [2]int
		for axis, n := range r.Position {
			v, err := n.Int64()
			if err != nil {
				return nil, fmt.Errorf("%w: record %d: coordinate %q is not an integer", ErrMalformed, i, n.String())
			}
			pos[axis] = int(v)
		}
		out = append(out, Record{
			BlockID:  *r.BlockID,
			Name:     r.Name,
			Purpose:  Purpose(*r.Purpose),
			Position: pos,
		})
	}
	return out, nil
}

// Validate checks every purpose and, when blocks is non-nil, that each id
// is known.
func Validate(d Descriptor, blocks BlockSet) error {
	for i, r := range d {
		if !r.Purpose.Valid() {
			return fmt.Errorf("%w: record %d: purpose %d", ErrMalformed, i, r.Purpose)
		}
		if blocks != nil && !blocks.Has(r.BlockID) {
			return fmt.Errorf("%w: record %d: block_id %d", ErrUnknownBlock, i, r.BlockID)
		}
	}
	return nil
}

// Decode parses and validates in one step.
func Decode(data []byte, blocks BlockSet) (Descriptor, error) {
	d, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := Validate(d, blocks); err != nil {
		return nil, err
	}
	return d, nil
}

// Marshal encodes d one record per line, the layout of hand-written levels.
func Marshal(d Descriptor) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, r := range d {
		line, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("levels: marshal record %d: %w", i, err)
		}
		buf.WriteString("  ")
		buf.Write(line)
		if i < len(d)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")
	return buf.Bytes(), nil
}

// Package feed adapts the host client's event stream into encounter
// events. The host writes one JSON object per line.
package feed

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"VorkathHelper/encounter"
)

var (
	// ErrMalformed is returned for a line that is not a JSON object.
	ErrMalformed = errors.New("malformed event")
	// ErrUnknownType is returned for a well-formed line with an unknown type.
	ErrUnknownType = errors.New("unknown event type")
	// ErrLineTooLong is returned for a line longer than maxLineSize.
	ErrLineTooLong = errors.New("line too long")
)

const maxLineSize = 64 * 1024

var kinds = map[string]encounter.Kind{
	"npc_spawned":             encounter.KindNPCSpawned,
	"npc_changed":             encounter.KindNPCChanged,
	"npc_despawned":           encounter.KindNPCDespawned,
	"game_object_spawned":     encounter.KindGameObjectSpawned,
	"graphics_object_created": encounter.KindGraphicsObjectCreated,
	"projectile_moved":        encounter.KindProjectileMoved,
}

type record struct {
	Type      string  `json:"type"`
	Index     *int    `json:"index"`
	ID        int     `json:"id"`
	Signature *string `json:"signature"`
}

// Decoder reads events from a line-oriented stream.
type Decoder struct {
	reader   *bufio.Reader
	registry *Registry
	buf      []byte
	line     int
}

// NewDecoder returns a decoder that resolves NPC identity through reg.
func NewDecoder(r io.Reader, reg *Registry) *Decoder {
	return &Decoder{reader: bufio.NewReaderSize(r, 4096), registry: reg}
}

// Next returns the next event. It returns io.EOF at the end of the stream.
// Decoding errors are per line; the caller may keep calling Next. A line
// longer than maxLineSize is consumed and reported as ErrLineTooLong.
func (d *Decoder) Next() (encounter.Event, error) {
	for {
		line, tooLong, err := d.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return encounter.Event{}, fmt.Errorf("reading feed: %w", err)
		}
		if tooLong {
			d.line++
			return encounter.Event{}, fmt.Errorf("line %d: %w", d.line, ErrLineTooLong)
		}
		if len(line) == 0 && err != nil {
			return encounter.Event{}, io.EOF
		}
		d.line++
		text := bytes.TrimSpace(line)
		if len(text) == 0 {
			continue
		}
		return d.registry.Decode(text, d.line)
	}
}

// readLine reads up to and including the next newline. Once a line grows
// past maxLineSize the rest of it is read and dropped.
func (d *Decoder) readLine() ([]byte, bool, error) {
	d.buf = d.buf[:0]
	tooLong := false
	for {
		chunk, err := d.reader.ReadSlice('\n')
		if !tooLong && len(d.buf)+len(chunk) > maxLineSize+1 {
			tooLong = true
			d.buf = d.buf[:0]
		}
		if !tooLong {
			d.buf = append(d.buf, chunk...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if tooLong {
			return nil, true, err
		}
		return d.buf, false, err
	}
}

// Decode turns one JSON line into an event. line is only used in errors.
func (r *Registry) Decode(data []byte, line int) (encounter.Event, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return encounter.Event{}, fmt.Errorf("line %d: %w: %v", line, ErrMalformed, err)
	}
	kind, ok := kinds[rec.Type]
	if !ok {
		return encounter.Event{}, fmt.Errorf("line %d: %w %q", line, ErrUnknownType, rec.Type)
	}

	ev := encounter.Event{Kind: kind}
	switch kind {
	case encounter.KindNPCSpawned:
		if rec.Index != nil {
			ev.NPC = r.Spawn(*rec.Index)
			ev.NPCID = rec.ID
		}
	case encounter.KindNPCChanged:
		if rec.Index != nil {
			ev.NPC = r.Change(*rec.Index)
			ev.NPCID = rec.ID
		}
	case encounter.KindNPCDespawned:
		if rec.Index != nil {
			ev.NPC = r.Despawn(*rec.Index)
		}
	case encounter.KindGameObjectSpawned, encounter.KindGraphicsObjectCreated:
		ev.ObjectID = rec.ID
	case encounter.KindProjectileMoved:
		if rec.Signature != nil {
			ev.Projectile = &encounter.Projectile{ID: rec.ID, Signature: *rec.Signature}
		}
	}
	return ev, nil
}

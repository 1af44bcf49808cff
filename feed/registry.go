package feed

import "VorkathHelper/encounter"

// Registry hands out one *encounter.NPC per live host entity so that the
// tracker can compare entities by identity. The handed-out NPCs are never
// mutated afterwards; they may be read on another goroutine.
type Registry struct {
	npcs map[int]*encounter.NPC
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{npcs: make(map[int]*encounter.NPC)}
}

// Spawn registers a new entity at index, replacing any stale one.
func (r *Registry) Spawn(index int) *encounter.NPC {
	npc := &encounter.NPC{Index: index}
	r.npcs[index] = npc
	return npc
}

// Change returns the entity at index for a form change, registering it
// if the index was never seen.
func (r *Registry) Change(index int) *encounter.NPC {
	npc, ok := r.npcs[index]
	if !ok {
		return r.Spawn(index)
	}
	return npc
}

// Despawn forgets the entity at index and returns it. An index that was
// never registered yields a fresh entity that matches nothing.
func (r *Registry) Despawn(index int) *encounter.NPC {
	npc, ok := r.npcs[index]
	if !ok {
		return &encounter.NPC{Index: index}
	}
	delete(r.npcs, index)
	return npc
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.npcs)
}

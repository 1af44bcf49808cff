package encounter

// Kind tags an event delivered by the host client.
type Kind int

const (
	KindNPCSpawned Kind = iota + 1
	KindNPCChanged
	KindNPCDespawned
	KindGameObjectSpawned
	KindGraphicsObjectCreated
	KindProjectileMoved
)

func (k Kind) String() string {
	switch k {
	case KindNPCSpawned:
		return "npc_spawned"
	case KindNPCChanged:
		return "npc_changed"
	case KindNPCDespawned:
		return "npc_despawned"
	case KindGameObjectSpawned:
		return "game_object_spawned"
	case KindGraphicsObjectCreated:
		return "graphics_object_created"
	case KindProjectileMoved:
		return "projectile_moved"
	}
	return "unknown"
}

// NPC is a live entity in the host client. The tracker compares NPCs by
// pointer, so the host adapter must hand out one instance per entity. The
// entity's form changes over time and travels in Event.NPCID instead.
type NPC struct {
	Index int
}

// Projectile is an in-flight projectile. Signature identifies the
// instance across the several callbacks it produces while moving.
type Projectile struct {
	ID        int
	Signature string
}

// Event is one host callback. Only the payload matching Kind is set.
// NPCID is the NPC's form at the time of the callback.
type Event struct {
	Kind       Kind
	NPC        *NPC
	NPCID      int
	ObjectID   int
	Projectile *Projectile
}

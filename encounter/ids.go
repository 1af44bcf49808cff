package encounter

// NPC identifiers for the boss forms.
const (
	AsleepID = 8059
	AwakeID  = 8061
)

// Identifiers of the scene objects that mark attacks or predict a special.
const (
	QuickfireBarrageObjectID = 32000 // spawned before the ice barrage special
	HighDamageFireGraphicID  = 1466
)

// Projectile identifiers.
const (
	ProjectileDragonbreath  = 393
	ProjectileFreeze        = 395
	ProjectileVenom         = 1470
	ProjectilePrayerDisable = 1471
	ProjectileRanged        = 1477
	ProjectileMagic         = 1479
)

// CycleLength is the number of regular attacks between two specials.
const CycleLength = 7

var regularProjectiles = map[int]string{
	ProjectileDragonbreath:  "VORKATH_DRAGONBREATH",
	ProjectileMagic:         "VORKATH_MAGIC",
	ProjectilePrayerDisable: "VORKATH_PRAYER_DISABLE",
	ProjectileRanged:        "VORKATH_RANGED",
	ProjectileVenom:         "VORKATH_VENOM",
}

package game

// Zone ids.
const (
	ZoneTavern  = "tavern"
	ZoneVillage = "village"
	ZoneForest  = "forest"
	ZoneDungeon = "dungeon"
	ZoneCaves   = "caves"
	ZoneRuins   = "ruins"
	ZoneAbyss   = "abyss"
)

// Zone is a static world region. RestRecovery is the percent of max
// stamina and mana recovered by an uninterrupted rest; AmbushChance is
// the percent chance a rest in this zone is interrupted.
type Zone struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Dangerous    bool   `json:"dangerous"`
	RestRecovery int    `json:"rest_recovery"`
	AmbushChance int    `json:"ambush_chance"`
}

// ZoneIDs lists zones from safest to most dangerous.
var ZoneIDs = []string{
	ZoneTavern, ZoneVillage, ZoneForest, ZoneRuins, ZoneCaves, ZoneDungeon, ZoneAbyss,
}

// Zones is the static world map.
var Zones = map[string]Zone{
	ZoneTavern:  {ID: ZoneTavern, Name: "Old Greg's Tavern", Dangerous: false, RestRecovery: 100, AmbushChance: 0},
	ZoneVillage: {ID: ZoneVillage, Name: "Village", Dangerous: false, RestRecovery: 100, AmbushChance: 5},
	ZoneForest:  {ID: ZoneForest, Name: "Dark Forest", Dangerous: true, RestRecovery: 50, AmbushChance: 50},
	ZoneDungeon: {ID: ZoneDungeon, Name: "Ancient Dungeon", Dangerous: true, RestRecovery: 25, AmbushChance: 75},
	ZoneCaves:   {ID: ZoneCaves, Name: "Underground Caves", Dangerous: true, RestRecovery: 30, AmbushChance: 60},
	ZoneRuins:   {ID: ZoneRuins, Name: "Forgotten Ruins", Dangerous: true, RestRecovery: 40, AmbushChance: 40},
	ZoneAbyss:   {ID: ZoneAbyss, Name: "The Abyss", Dangerous: true, RestRecovery: 15, AmbushChance: 85},
}

// hostileZones are the regions dire enough to mark the character as
// In Danger on the status readout.
var hostileZones = map[string]bool{
	ZoneDungeon: true,
	ZoneCaves:   true,
	ZoneAbyss:   true,
}

// ZoneByID looks up a zone by id, case-insensitively. Returns the zone
// and whether it exists.
func ZoneByID(id string) (Zone, bool) {
	z, ok := Zones[NormalizeKey(id)]
	return z, ok
}

package game

// Class tiers.
const (
	TierExotic         = "exotic"
	TierProfessional   = "professional"
	TierHybrid         = "hybrid_specialized"
	TierFinalChallenge = "final_challenge"
)

// Class categories describe the stamina/mana balance of a class.
const (
	CategoryLowMagic  = "low_magic"
	CategoryHighMagic = "high_magic"
	CategoryHybrid    = "hybrid"
)

// Class is a static character class definition. MaxStamina and MaxMana
// are the level-1 resource pools; per-level gains are derived from them.
type Class struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Offense         int            `json:"offense"`
	Defense         int            `json:"defense"`
	Magic           int            `json:"magic"`
	PrimaryStrength string         `json:"primary_strength"`
	MajorWeakness   string         `json:"major_weakness"`
	Category        string         `json:"category"`
	Tier            string         `json:"tier"`
	MaxMana         int            `json:"max_mana"`
	MaxStamina      int            `json:"max_stamina"`
	DefaultStats    map[string]int `json:"default_stats,omitempty"`
}

// ClassByID returns the class definition for an id, or nil.
func ClassByID(id string) *Class {
	for i := range Classes {
		if Classes[i].ID == NormalizeKey(id) {
			return &Classes[i]
		}
	}
	return nil
}

// Classes is the full playable class catalog.
var Classes = []Class{
	// Exotic / monster classes
	{ID: "lich", Name: "Lich", Description: "Undead sorcerer. Can cast deep magic while drained.", Offense: 6, Defense: 4, Magic: 9, PrimaryStrength: "Necromancy/Soulbinding", MajorWeakness: "Fire vulnerability", Category: CategoryHighMagic, Tier: TierExotic, MaxMana: 180, MaxStamina: 50, DefaultStats: map[string]int{"necromancy": 25, "soulbinding": 20, "destruction": 15, "alteration": 10, "illusion": 5, "intimidation": 10, "brawling": 2, "one_handed": 2, "climbing": 2, "infamy": 15}},
	{ID: "werewolf", Name: "Werewolf", Description: "Primal beast. Burns stamina for leaps and frenzy.", Offense: 9, Defense: 6, Magic: 1, PrimaryStrength: "Brawling/Regeneration", MajorWeakness: "Weak to silver, low mana", Category: CategoryLowMagic, Tier: TierExotic, MaxMana: 15, MaxStamina: 180, DefaultStats: map[string]int{"brawling": 25, "regeneration": 15, "acrobatics": 15, "climbing": 15, "stealth": 10, "intimidation": 10, "beastmastery": 10, "destruction": 1, "alteration": 1, "bravery": 10}},
	{ID: "angel", Name: "Fallen Angel", Description: "Celestial being. High magic resistance, weak to bloodmancy.", Offense: 8, Defense: 3, Magic: 9, PrimaryStrength: "Alteration/Justice", MajorWeakness: "Double damage from bloodmancy", Category: CategoryHighMagic, Tier: TierExotic, MaxMana: 200, MaxStamina: 45, DefaultStats: map[string]int{"alteration": 25, "regeneration": 20, "destruction": 15, "persuasion": 10, "justice": 20, "honor": 15, "mercy": 10, "brawling": 2, "stealth": 1}},
	{ID: "vampire", Name: "Vampire Noble", Description: "Can bite to restore stamina mid-battle.", Offense: 8, Defense: 5, Magic: 6, PrimaryStrength: "Seduction/Bloodmancy/Acrobatics", MajorWeakness: "Sunlight weakness", Category: CategoryHybrid, Tier: TierExotic, MaxMana: 70, MaxStamina: 90, DefaultStats: map[string]int{"seduction": 25, "bloodmancy": 20, "acrobatics": 15, "stealth": 12, "persuasion": 10, "intimidation": 8, "one_handed": 8, "infamy": 10, "malice": 5}},
	{ID: "abyssal_mutant", Name: "Abyssal Mutant", Description: "Warped by betrayal. Deception and raw power.", Offense: 9, Defense: 7, Magic: 3, PrimaryStrength: "Deception/Brawling", MajorWeakness: "NPCs distrust you", Category: CategoryLowMagic, Tier: TierExotic, MaxMana: 20, MaxStamina: 170, DefaultStats: map[string]int{"brawling": 25, "intimidation": 20, "climbing": 12, "stealth": 10, "two_handed": 8, "acrobatics": 8, "infamy": 20, "malice": 10, "destruction": 3}},

	// Professional classes
	{ID: "inquisitor", Name: "Inquisitor", Description: "Gains mana when intimidating magical enemies.", Offense: 7, Defense: 6, Magic: 5, PrimaryStrength: "Intimidation/One Handed", MajorWeakness: "Low flexibility", Category: CategoryHybrid, Tier: TierProfessional, MaxMana: 65, MaxStamina: 95, DefaultStats: map[string]int{"intimidation": 20, "one_handed": 18, "investigation": 15, "persuasion": 8, "destruction": 8, "alteration": 5, "justice": 15, "honor": 10, "bravery": 8}},
	{ID: "bounty_hunter", Name: "Bounty Hunter", Description: "Tracks marks with little effort.", Offense: 7, Defense: 5, Magic: 3, PrimaryStrength: "Beastmastery/Ranged", MajorWeakness: "Weak in close combat", Category: CategoryLowMagic, Tier: TierProfessional, MaxMana: 20, MaxStamina: 160, DefaultStats: map[string]int{"aim": 22, "beastmastery": 18, "stealth": 12, "investigation": 12, "climbing": 8, "acrobatics": 8, "bartering": 5, "brawling": 3, "justice": 8}},
	{ID: "battle_medic", Name: "Battle Medic", Description: "High mana healer. Keeps mercy high.", Offense: 3, Defense: 5, Magic: 8, PrimaryStrength: "Regeneration/Persuasion", MajorWeakness: "Low offense", Category: CategoryHighMagic, Tier: TierProfessional, MaxMana: 150, MaxStamina: 60, DefaultStats: map[string]int{"regeneration": 25, "persuasion": 18, "alteration": 12, "investigation": 8, "mercy": 20, "honor": 10, "loyalty": 10, "brawling": 2, "stealth": 1}},
	{ID: "shadow_blade", Name: "Shadow Blade", Description: "Ultimate assassin for cold justice.", Offense: 9, Defense: 3, Magic: 4, PrimaryStrength: "Stealth/Sleight of Hand", MajorWeakness: "Very low HP", Category: CategoryLowMagic, Tier: TierProfessional, MaxMana: 15, MaxStamina: 175, DefaultStats: map[string]int{"stealth": 25, "sleight_of_hand": 20, "one_handed": 15, "acrobatics": 12, "climbing": 10, "aim": 5, "illusion": 5, "infamy": 8}},
	{ID: "wandering_knight", Name: "Wandering Knight", Description: "High physical defense. Honorable warrior.", Offense: 7, Defense: 9, Magic: 2, PrimaryStrength: "Two Handed/Honor", MajorWeakness: "Slow movement", Category: CategoryLowMagic, Tier: TierProfessional, MaxMana: 15, MaxStamina: 160, DefaultStats: map[string]int{"two_handed": 22, "one_handed": 12, "brawling": 8, "climbing": 5, "persuasion": 5, "honor": 20, "bravery": 15, "loyalty": 10, "justice": 8}},
	{ID: "assassin", Name: "Assassin", Description: "Master of shadows and critical strikes.", Offense: 10, Defense: 2, Magic: 2, PrimaryStrength: "Stealth/Crit Damage", MajorWeakness: "Very low HP", Category: CategoryLowMagic, Tier: TierProfessional, MaxMana: 10, MaxStamina: 190, DefaultStats: map[string]int{"stealth": 25, "one_handed": 20, "acrobatics": 15, "sleight_of_hand": 12, "climbing": 8, "aim": 5, "infamy": 10, "bravery": 5}},
	{ID: "brute", Name: "Brute", Description: "Unstoppable wall of muscle.", Offense: 7, Defense: 10, Magic: 1, PrimaryStrength: "Raw HP/Physical Defense", MajorWeakness: "Extremely slow", Category: CategoryLowMagic, Tier: TierProfessional, MaxMana: 10, MaxStamina: 200, DefaultStats: map[string]int{"brawling": 25, "two_handed": 20, "climbing": 10, "intimidation": 12, "bravery": 15, "one_handed": 5, "acrobatics": 2}},
	{ID: "priest", Name: "Priest", Description: "Divine healer and protector.", Offense: 1, Defense: 5, Magic: 10, PrimaryStrength: "Healing/Shields", MajorWeakness: "Zero physical attack", Category: CategoryHighMagic, Tier: TierProfessional, MaxMana: 200, MaxStamina: 40, DefaultStats: map[string]int{"regeneration": 25, "alteration": 22, "persuasion": 15, "mercy": 25, "honor": 15, "loyalty": 10, "investigation": 5, "brawling": 1}},
	{ID: "bard", Name: "Bard", Description: "Charismatic performer and buffer.", Offense: 4, Defense: 4, Magic: 7, PrimaryStrength: "Buffing/Persuasion", MajorWeakness: "Weak solo fighter", Category: CategoryHybrid, Tier: TierProfessional, MaxMana: 70, MaxStamina: 85, DefaultStats: map[string]int{"persuasion": 25, "illusion": 18, "seduction": 12, "bartering": 10, "investigation": 8, "acrobatics": 5, "alteration": 5, "loyalty": 8}},
	{ID: "druid", Name: "Druid", Description: "Guardian of nature.", Offense: 5, Defense: 6, Magic: 8, PrimaryStrength: "Shapeshifting/Nature Magic", MajorWeakness: "Weak in cities", Category: CategoryHybrid, Tier: TierProfessional, MaxMana: 80, MaxStamina: 80, DefaultStats: map[string]int{"beastmastery": 25, "regeneration": 18, "alteration": 12, "climbing": 10, "investigation": 8, "mercy": 10, "honor": 5, "brawling": 5}},
	{ID: "monk", Name: "Monk", Description: "Martial arts master.", Offense: 7, Defense: 7, Magic: 4, PrimaryStrength: "Unarmed Combat/Speed", MajorWeakness: "No armor", Category: CategoryHybrid, Tier: TierProfessional, MaxMana: 60, MaxStamina: 100, DefaultStats: map[string]int{"brawling": 22, "acrobatics": 20, "climbing": 12, "stealth": 8, "regeneration": 8, "honor": 10, "bravery": 10, "persuasion": 3}},
	{ID: "rogue", Name: "Rogue", Description: "Cunning thief and trickster.", Offense: 7, Defense: 4, Magic: 3, PrimaryStrength: "Stealth/Lockpicking", MajorWeakness: "Low direct combat", Category: CategoryLowMagic, Tier: TierProfessional, MaxMana: 15, MaxStamina: 165, DefaultStats: map[string]int{"stealth": 22, "sleight_of_hand": 20, "acrobatics": 12, "bartering": 10, "climbing": 8, "one_handed": 8, "investigation": 5, "infamy": 5}},
	{ID: "archer", Name: "Archer", Description: "Precision ranged fighter.", Offense: 8, Defense: 3, Magic: 3, PrimaryStrength: "Ranged Attacks/Accuracy", MajorWeakness: "Weak in melee", Category: CategoryLowMagic, Tier: TierProfessional, MaxMana: 15, MaxStamina: 165, DefaultStats: map[string]int{"aim": 25, "acrobatics": 15, "stealth": 10, "climbing": 10, "investigation": 8, "bravery": 8, "one_handed": 3, "beastmastery": 5}},
	{ID: "paladin", Name: "Paladin", Description: "Holy knight of justice.", Offense: 7, Defense: 8, Magic: 5, PrimaryStrength: "Holy Damage/Healing", MajorWeakness: "Cannot lie or deceive", Category: CategoryHybrid, Tier: TierProfessional, MaxMana: 70, MaxStamina: 90, DefaultStats: map[string]int{"two_handed": 18, "regeneration": 15, "one_handed": 10, "persuasion": 8, "honor": 20, "justice": 15, "bravery": 12, "loyalty": 10, "mercy": 8}},
	{ID: "berserker", Name: "Berserker", Description: "Rage-fueled warrior.", Offense: 10, Defense: 3, Magic: 0, PrimaryStrength: "Extreme Damage/Rage", MajorWeakness: "Cannot defend", Category: CategoryLowMagic, Tier: TierProfessional, MaxMana: 10, MaxStamina: 200, DefaultStats: map[string]int{"brawling": 25, "two_handed": 22, "climbing": 8, "intimidation": 15, "bravery": 20, "infamy": 5, "acrobatics": 3}},
	{ID: "knight", Name: "Knight", Description: "Honorable armored warrior.", Offense: 6, Defense: 9, Magic: 2, PrimaryStrength: "Heavy Armor/Leadership", MajorWeakness: "Slow movement", Category: CategoryLowMagic, Tier: TierProfessional, MaxMana: 15, MaxStamina: 160, DefaultStats: map[string]int{"two_handed": 18, "one_handed": 15, "brawling": 8, "persuasion": 8, "honor": 18, "loyalty": 12, "bravery": 15, "justice": 8}},
	{ID: "storm_mage", Name: "Storm Mage", Description: "Master of lightning and wind.", Offense: 9, Defense: 3, Magic: 9, PrimaryStrength: "High Area Damage", MajorWeakness: "High mana cost", Category: CategoryHighMagic, Tier: TierExotic, MaxMana: 180, MaxStamina: 45, DefaultStats: map[string]int{"destruction": 25, "alteration": 18, "illusion": 8, "regeneration": 5, "intimidation": 8, "bravery": 10, "brawling": 2, "climbing": 2}},
	{ID: "pyromancer", Name: "Pyromancer", Description: "Master of flames.", Offense: 10, Defense: 2, Magic: 8, PrimaryStrength: "Fire Damage", MajorWeakness: "Self-damage risk", Category: CategoryHighMagic, Tier: TierExotic, MaxMana: 160, MaxStamina: 50, DefaultStats: map[string]int{"destruction": 25, "bloodmancy": 18, "alteration": 8, "intimidation": 10, "bravery": 12, "acrobatics": 3, "stealth": 2, "infamy": 5}},
	{ID: "necromancer", Name: "Necromancer", Description: "Commander of the undead.", Offense: 5, Defense: 3, Magic: 10, PrimaryStrength: "Summon Undead/Curses", MajorWeakness: "Hated by all", Category: CategoryHighMagic, Tier: TierExotic, MaxMana: 190, MaxStamina: 40, DefaultStats: map[string]int{"necromancy": 25, "soulbinding": 20, "destruction": 10, "bloodmancy": 8, "intimidation": 10, "infamy": 20, "malice": 10, "investigation": 3}},

	// Specialized hybrid classes
	{ID: "soul_binder", Name: "Soul Binder", Description: "Can bind defeated enemies as permanent companions.", Offense: 5, Defense: 5, Magic: 8, PrimaryStrength: "Soulbinding/Loyalty", MajorWeakness: "Low physical stats", Category: CategoryHighMagic, Tier: TierHybrid, MaxMana: 160, MaxStamina: 55, DefaultStats: map[string]int{"soulbinding": 25, "necromancy": 12, "alteration": 12, "persuasion": 10, "investigation": 8, "loyalty": 20, "bravery": 5, "brawling": 2, "stealth": 2}},
	{ID: "gunsmith", Name: "Gunsmith", Description: "Uses bloodmancy to craft custom bullets.", Offense: 7, Defense: 4, Magic: 5, PrimaryStrength: "Aim/Bartering", MajorWeakness: "Relies on crafted ammo", Category: CategoryHybrid, Tier: TierHybrid, MaxMana: 60, MaxStamina: 100, DefaultStats: map[string]int{"aim": 22, "bartering": 18, "bloodmancy": 10, "investigation": 10, "sleight_of_hand": 8, "destruction": 5, "stealth": 5, "climbing": 3}},
	{ID: "illusionist", Name: "Illusionist Thief", Description: "Decoys cost no mana, only sweat.", Offense: 5, Defense: 3, Magic: 7, PrimaryStrength: "Illusion/Deception", MajorWeakness: "Low direct damage", Category: CategoryHybrid, Tier: TierHybrid, MaxMana: 75, MaxStamina: 85, DefaultStats: map[string]int{"illusion": 25, "stealth": 15, "sleight_of_hand": 15, "persuasion": 10, "acrobatics": 8, "seduction": 5, "bartering": 5, "brawling": 1}},
	{ID: "void_walker", Name: "Void Walker", Description: "Phases through attacks, regaining stamina on success.", Offense: 6, Defense: 4, Magic: 7, PrimaryStrength: "Alteration/Acrobatics", MajorWeakness: "Unstable abilities", Category: CategoryHybrid, Tier: TierHybrid, MaxMana: 80, MaxStamina: 80, DefaultStats: map[string]int{"alteration": 22, "acrobatics": 18, "destruction": 10, "stealth": 8, "climbing": 8, "illusion": 8, "investigation": 5, "bravery": 8}},
	{ID: "dread_lord", Name: "Dread Lord", Description: "Villain path. Necromancy and area damage.", Offense: 8, Defense: 5, Magic: 8, PrimaryStrength: "Necromancy/Intimidation", MajorWeakness: "Hated by all NPCs", Category: CategoryHighMagic, Tier: TierHybrid, MaxMana: 170, MaxStamina: 50, DefaultStats: map[string]int{"necromancy": 22, "intimidation": 20, "destruction": 15, "soulbinding": 10, "bloodmancy": 8, "infamy": 25, "malice": 20, "brawling": 3}},

	// Final challenge classes
	{ID: "fallen_hero", Name: "The Fallen Hero", Description: "Balanced but hollowed out by the betrayal.", Offense: 5, Defense: 5, Magic: 5, PrimaryStrength: "Balanced stats", MajorWeakness: "Drained until level 5", Category: CategoryHybrid, Tier: TierFinalChallenge, MaxMana: 70, MaxStamina: 90, DefaultStats: map[string]int{"one_handed": 10, "persuasion": 10, "brawling": 8, "stealth": 8, "destruction": 8, "alteration": 8, "acrobatics": 8, "honor": 5, "bravery": 5}},
	{ID: "cursed_peasant", Name: "Cursed Peasant", Description: "Starts with nothing. Every kill counts double.", Offense: 2, Defense: 2, Magic: 2, PrimaryStrength: "Double XP on kills", MajorWeakness: "Zero starting stats", Category: CategoryHybrid, Tier: TierFinalChallenge, MaxMana: 40, MaxStamina: 80},
	{ID: "broken_vessel", Name: "The Broken Vessel", Description: "No mana at all. Pays for spells in blood and sweat.", Offense: 7, Defense: 5, Magic: 3, PrimaryStrength: "Bloodmancy casting without mana", MajorWeakness: "Zero mana, permanently shaking", Category: CategoryLowMagic, Tier: TierFinalChallenge, MaxMana: 0, MaxStamina: 150, DefaultStats: map[string]int{"brawling": 18, "regeneration": 15, "bloodmancy": 12, "climbing": 8, "two_handed": 8, "bravery": 20, "intimidation": 5}},
	{ID: "nameless_ghoul", Name: "The Nameless Ghoul", Description: "Shunned by the living. Consumes enemies for strength.", Offense: 6, Defense: 4, Magic: 7, PrimaryStrength: "Half-cost necromancy", MajorWeakness: "NPCs refuse to speak to you", Category: CategoryHighMagic, Tier: TierFinalChallenge, MaxMana: 140, MaxStamina: 60, DefaultStats: map[string]int{"necromancy": 20, "stealth": 18, "sleight_of_hand": 15, "soulbinding": 10, "bloodmancy": 8, "infamy": 15, "malice": 15, "investigation": 3}},
	{ID: "fallen_prodigy", Name: "The Fallen Prodigy", Description: "Blinded, but sees everything.", Offense: 4, Defense: 3, Magic: 9, PrimaryStrength: "Perfect investigation, huge spell radius", MajorWeakness: "Cannot use ranged weapons", Category: CategoryHighMagic, Tier: TierFinalChallenge, MaxMana: 180, MaxStamina: 45, DefaultStats: map[string]int{"illusion": 25, "alteration": 20, "investigation": 20, "destruction": 10, "regeneration": 8, "persuasion": 5, "bravery": 8}},
	{ID: "exile_kingslayer", Name: "The Exile Kingslayer", Description: "Hunted by bounty hunters. Strikes back threefold.", Offense: 8, Defense: 10, Magic: 2, PrimaryStrength: "Highest defense", MajorWeakness: "Random bounty hunter ambushes", Category: CategoryLowMagic, Tier: TierFinalChallenge, MaxMana: 15, MaxStamina: 180, DefaultStats: map[string]int{"two_handed": 22, "intimidation": 18, "brawling": 12, "climbing": 8, "one_handed": 8, "justice": 20, "bravery": 15, "infamy": 10}},
	{ID: "mimic_symbiote", Name: "The Mimic Symbiote", Description: "Bonded with a parasite that copies what it kills.", Offense: 6, Defense: 5, Magic: 6, PrimaryStrength: "Copies skills from defeated enemies", MajorWeakness: "Regeneration drains stamina", Category: CategoryHybrid, Tier: TierFinalChallenge, MaxMana: 70, MaxStamina: 90, DefaultStats: map[string]int{"acrobatics": 18, "alteration": 15, "stealth": 12, "climbing": 8, "brawling": 8, "investigation": 8, "sleight_of_hand": 5, "bravery": 5}},
}

package game

// Snapshot is the full mutable game state for one character, read in a
// single load and written back in a single save. The applier works on a
// copy so a failed save never leaves half-applied state behind.
type Snapshot struct {
	Character  *Character      `json:"character"`
	Inventory  []InventoryItem `json:"inventory"`
	Companions []Companion     `json:"companions"`

	// JournalCount is the number of persisted journal entries, used to
	// number new ones. PendingJournal holds entries appended during
	// apply; the store drains it on save.
	JournalCount   int            `json:"journal_count"`
	PendingJournal []JournalEntry `json:"-"`
}

// DeepCopy returns an independent copy of the snapshot.
func (s *Snapshot) DeepCopy() *Snapshot {
	cp := &Snapshot{
		Character:    s.Character.DeepCopy(),
		Inventory:    make([]InventoryItem, len(s.Inventory)),
		Companions:   make([]Companion, len(s.Companions)),
		JournalCount: s.JournalCount,
	}
	copy(cp.Inventory, s.Inventory)
	copy(cp.Companions, s.Companions)
	return cp
}

package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item types.
const (
	ItemTypeWeapon     = "weapon"
	ItemTypeArmor      = "armor"
	ItemTypeConsumable = "consumable"
	ItemTypeQuest      = "quest"
	ItemTypeMisc       = "misc"
)

var titleCaser = cases.Title(language.English)

// InventoryItem is a stack of identical items. Items are keyed by name,
// case-insensitively; quantity tracks the stack size.
type InventoryItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Quantity    int       `json:"quantity"`
	ItemType    string    `json:"item_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// StartingItems is the kit every new character wakes up with.
func StartingItems() []InventoryItem {
	now := time.Now().UTC()
	return []InventoryItem{
		{ID: uuid.New(), Name: "Rusty Sword", Description: "An old but reliable blade", Icon: "⚔️", Quantity: 1, ItemType: ItemTypeWeapon, CreatedAt: now},
		{ID: uuid.New(), Name: "Health Potion", Description: "Restores 25 HP", Icon: "🧪", Quantity: 2, ItemType: ItemTypeConsumable, CreatedAt: now},
		{ID: uuid.New(), Name: "Torch", Description: "Lights the way in dark places", Icon: "🔦", Quantity: 3, ItemType: ItemTypeMisc, CreatedAt: now},
	}
}

// AddItem merges an item into the inventory. An existing stack with the
// same name (any casing) absorbs the quantity; otherwise a new stack is
// created with a display-cased name.
func AddItem(inv []InventoryItem, name, description, icon, itemType string, quantity int) []InventoryItem {
	name = strings.TrimSpace(name)
	if name == "" {
		return inv
	}
	if quantity <= 0 {
		quantity = 1
	}
	for i := range inv {
		if strings.EqualFold(inv[i].Name, name) {
			inv[i].Quantity += quantity
			return inv
		}
	}
	if icon == "" {
		icon = "📦"
	}
	if itemType == "" {
		itemType = ItemTypeMisc
	}
	return append(inv, InventoryItem{
		ID:          uuid.New(),
		Name:        titleCaser.String(name),
		Description: description,
		Icon:        icon,
		Quantity:    quantity,
		ItemType:    itemType,
		CreatedAt:   time.Now().UTC(),
	})
}

// RemoveItem decrements a stack by name, case-insensitively. Stacks at
// zero are deleted. Unknown names are a no-op; the bool reports whether
// anything was removed.
func RemoveItem(inv []InventoryItem, name string) ([]InventoryItem, bool) {
	for i := range inv {
		if strings.EqualFold(inv[i].Name, strings.TrimSpace(name)) {
			inv[i].Quantity--
			if inv[i].Quantity <= 0 {
				return append(inv[:i], inv[i+1:]...), true
			}
			return inv, true
		}
	}
	return inv, false
}

// RemoveItemStack deletes an entire stack by name, case-insensitively.
func RemoveItemStack(inv []InventoryItem, name string) ([]InventoryItem, bool) {
	for i := range inv {
		if strings.EqualFold(inv[i].Name, strings.TrimSpace(name)) {
			return append(inv[:i], inv[i+1:]...), true
		}
	}
	return inv, false
}

// FindItem returns the stack with the given name, or nil.
func FindItem(inv []InventoryItem, name string) *InventoryItem {
	for i := range inv {
		if strings.EqualFold(inv[i].Name, strings.TrimSpace(name)) {
			return &inv[i]
		}
	}
	return nil
}

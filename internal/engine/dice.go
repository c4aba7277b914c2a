package engine

import "github.com/KirkDiggler/rpg-toolkit/dice"

// Roller draws dice for the engine. Tests substitute a deterministic
// implementation.
type Roller interface {
	Roll(count, size int) (int, error)
}

type toolkitRoller struct{}

// NewRoller returns the production cryptographic dice roller.
func NewRoller() Roller { return toolkitRoller{} }

func (toolkitRoller) Roll(count, size int) (int, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return 0, err
	}
	return roll.GetValue(), nil
}

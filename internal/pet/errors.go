package pet

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientEnergy means an action's energy requirement was not met
	ErrInsufficientEnergy = errors.New("not enough energy")
	// ErrInsufficientFunds means a purchase costs more than the pet has
	ErrInsufficientFunds = errors.New("not enough coins")
	// ErrInvalidReference means an item, collectible, task or offer id did not resolve
	ErrInvalidReference = errors.New("invalid reference")
	// ErrNoOp means the request was valid but there was nothing to do
	ErrNoOp = errors.New("nothing to do")
	// ErrBusy means another action is still animating
	ErrBusy = fmt.Errorf("pet is busy: %w", ErrNoOp)
	// ErrInvalidInput means a caller supplied a malformed argument
	ErrInvalidInput = errors.New("invalid input")
)

// EnergyError reports an unmet energy requirement
type EnergyError struct {
	Action string
	Need   float64
	Have   float64
}

func (e *EnergyError) Error() string {
	return fmt.Sprintf("%s needs %.0f energy, have %.1f", e.Action, e.Need, e.Have)
}

func (e *EnergyError) Unwrap() error { return ErrInsufficientEnergy }

// FundsError reports a purchase the pet cannot afford
type FundsError struct {
	Price int
	Coins int
}

func (e *FundsError) Error() string {
	return fmt.Sprintf("costs %d coins, have %d (short %d)", e.Price, e.Coins, e.Shortfall())
}

func (e *FundsError) Unwrap() error { return ErrInsufficientFunds }

// Shortfall is how many more coins the purchase needs
func (e *FundsError) Shortfall() int { return e.Price - e.Coins }

func invalidRef(kind string, id any) error {
	return fmt.Errorf("%s %v: %w", kind, id, ErrInvalidReference)
}

package pricing

import "github.com/ponmalar/snackstore/internal/models"

// Quantity rules per unit. The floor is enforced by every mutation; the
// step only by the nudge (±) operations, matching the storefront controls.
const (
	MinGrams        int64 = 100
	StepGrams       int64 = 50
	DefaultAddGrams int64 = 250

	MinPieces        int64 = 1
	StepPieces       int64 = 1
	DefaultAddPieces int64 = 1
)

func MinQuantity(u models.QuantityUnit) int64 {
	if u == models.Pieces {
		return MinPieces
	}
	return MinGrams
}

func Step(u models.QuantityUnit) int64 {
	if u == models.Pieces {
		return StepPieces
	}
	return StepGrams
}

func DefaultAdd(u models.QuantityUnit) int64 {
	if u == models.Pieces {
		return DefaultAddPieces
	}
	return DefaultAddGrams
}

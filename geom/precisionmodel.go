package geom

import "math"

// PrecisionModelType selects how a PrecisionModel rounds coordinates.
type PrecisionModelType int

const (
	// Floating performs no rounding at all (full double precision).
	Floating PrecisionModelType = iota
	// FloatingSingle rounds to the precision representable by an IEEE
	// single-precision float, while still storing the result as a
	// float64.
	FloatingSingle
	// Fixed rounds to a fixed grid determined by a scale factor.
	Fixed
)

// PrecisionModel specifies how much numerical precision is preserved when
// coordinates are generated or copied: floating (no-op), floating-single
// (round-trip through float32), or fixed (round to a grid of spacing
// 1/scale). All intersection points and generated buffer points pass
// through the active model exactly once before being emitted (spec §9).
type PrecisionModel struct {
	modelType PrecisionModelType
	scale     float64
}

// NewFloatingPrecisionModel returns the no-op precision model.
func NewFloatingPrecisionModel() *PrecisionModel {
	return &PrecisionModel{modelType: Floating}
}

// NewFloatingSinglePrecisionModel returns the single-precision-rounding
// model.
func NewFloatingSinglePrecisionModel() *PrecisionModel {
	return &PrecisionModel{modelType: FloatingSingle}
}

// NewFixedPrecisionModel returns a model that rounds to the grid 1/scale.
// A non-positive scale yields the floating model instead; no error is
// reported for it.
func NewFixedPrecisionModel(scale float64) *PrecisionModel {
	if scale <= 0 {
		// A fixed model is meaningless with a non-positive scale; fall
		// back to floating rather than dividing by zero on every round.
		return NewFloatingPrecisionModel()
	}
	return &PrecisionModel{modelType: Fixed, scale: scale}
}

// Type reports which rounding strategy this model uses.
func (pm *PrecisionModel) Type() PrecisionModelType {
	if pm == nil {
		return Floating
	}
	return pm.modelType
}

// Scale returns the fixed-model scale factor, or 0 for non-fixed models.
func (pm *PrecisionModel) Scale() float64 {
	if pm == nil || pm.modelType != Fixed {
		return 0
	}
	return pm.scale
}

// IsFloating reports whether this model performs no fixed-grid rounding.
func (pm *PrecisionModel) IsFloating() bool {
	return pm == nil || pm.modelType == Floating
}

// MakePrecise rounds v the way this model rounds coordinates.
func (pm *PrecisionModel) MakePrecise(v float64) float64 {
	if pm == nil {
		return v
	}
	switch pm.modelType {
	case Floating:
		return v
	case FloatingSingle:
		return float64(float32(v))
	case Fixed:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return v
		}
		return math.Round(v*pm.scale) / pm.scale
	default:
		return v
	}
}

// MakeCoordinatePrecise rounds both ordinates of c in place,
// matching the "make_precise(pm) mutates in place" contract from spec §3.
func (pm *PrecisionModel) MakeCoordinatePrecise(c *Coordinate) {
	c.X = pm.MakePrecise(c.X)
	c.Y = pm.MakePrecise(c.Y)
}

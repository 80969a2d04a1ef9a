package fraxlend

import (
	"fmt"

	"fraxlend/core"
	"fraxlend/pkg/number"
)

// NewRateCalculator build the rate curve named by the config
func NewRateCalculator(cfg core.Rate) (core.RateCalculator, error) {
	switch cfg.Name {
	case "", "variable":
		return NewVariableRate(), nil
	case "linear":
		return NewLinearRate(
			number.Decimal(cfg.MinRate),
			number.Decimal(cfg.VertexRate),
			number.Decimal(cfg.MaxRate),
			number.Decimal(cfg.VertexUtilization),
		)
	case "jump":
		return NewJumpRate(
			number.Decimal(cfg.BaseRate),
			number.Decimal(cfg.Multiplier),
			number.Decimal(cfg.JumpMultiplier),
			number.Decimal(cfg.Kink),
		)
	default:
		return nil, fmt.Errorf("%w: unknown rate calculator %q", core.ErrInvalidConfig, cfg.Name)
	}
}

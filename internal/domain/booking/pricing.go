package booking

import "fmt"

// PricingStrategy defines the interface for calculating booking totals.
type PricingStrategy interface {
	// Calculate returns the total amount in whole rupiah for the given parameters.
	Calculate(params PricingParams) (int64, error)
}

// PricingParams holds the inputs for total calculation.
type PricingParams struct {
	PricePerDay  int64
	DurationDays int
}

// StandardPricingStrategy implements the default pricing logic: the
// office's daily rate times the package duration. There are no partial
// days and no discounts; promotional pricing would be a separate strategy.
type StandardPricingStrategy struct{}

// NewStandardPricingStrategy creates a new StandardPricingStrategy.
func NewStandardPricingStrategy() *StandardPricingStrategy {
	return &StandardPricingStrategy{}
}

// Calculate computes the total amount in whole rupiah.
func (s *StandardPricingStrategy) Calculate(params PricingParams) (int64, error) {
	if params.PricePerDay <= 0 {
		return 0, fmt.Errorf("price per day must be positive")
	}
	if params.DurationDays <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return params.PricePerDay * int64(params.DurationDays), nil
}

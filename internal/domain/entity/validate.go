package entity

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the offering's value ranges.
func (o Offering) Validate() error {
	return errors.Wrap(structValidator.Struct(o), "invalid offering")
}

// Validate checks a single demand entry.
func (f DemandForecast) Validate() error {
	return errors.Wrap(structValidator.Struct(f), "invalid demand forecast")
}

// Validate checks the preferences including every demand entry.
func (p *BuyerPreferences) Validate() error {
	if p == nil {
		return nil
	}

	return errors.Wrap(structValidator.Struct(p), "invalid buyer preferences")
}

// Sanitize drops blank categories, invalid demand entries and a negative
// budget, and reports how many values were dropped. The result always passes
// Validate.
func (p *BuyerPreferences) Sanitize() int {
	if p == nil {
		return 0
	}

	dropped := 0

	categories := p.PreferredCategories[:0]
	for _, c := range p.PreferredCategories {
		if strings.TrimSpace(c) == "" {
			dropped++

			continue
		}
		categories = append(categories, c)
	}
	p.PreferredCategories = categories

	if p.MaxBudget != nil && *p.MaxBudget < 0 {
		p.MaxBudget = nil
		dropped++
	}

	forecasts := p.DemandForecasts[:0]
	for _, f := range p.DemandForecasts {
		if f.Validate() != nil {
			dropped++

			continue
		}
		forecasts = append(forecasts, f)
	}
	p.DemandForecasts = forecasts

	return dropped
}

package model

import (
	"errors"
	"fmt"
)

// CurrentFormulaVersion is the pricing formula this build implements:
// per-product margin, shipping itemized per unit, undocumented expenses
// distributed over factory cost.
const CurrentFormulaVersion = 3

// ErrUnsupportedFormulaVersion is returned for pricing contexts written by another formula.
var ErrUnsupportedFormulaVersion = errors.New("unsupported pricing formula version")

// ExpenseType selects how the undocumented expense amount is derived.
type ExpenseType string

const (
	// ExpensePercent is a percentage of the total customer transaction value.
	ExpensePercent ExpenseType = "percent"
	// ExpenseFixed is an absolute container-wide amount in local currency.
	ExpenseFixed ExpenseType = "fixed"
)

// ExpensePolicy describes the undocumented expense charged on a container.
//
// @Description Undocumented expense policy, percent of transaction value or fixed local amount
type ExpensePolicy struct {
	Type  ExpenseType `json:"type" bson:"type" example:"percent"`
	Value float64     `json:"value" bson:"value" example:"3"`
}

// PricingContext carries the container-wide pricing inputs.
//
// @Description Exchange rate, freight and expense policy for a quote
type PricingContext struct {
	FormulaVersion          int           `json:"formula_version,omitempty" bson:"formula_version,omitempty" example:"3"`
	ExchangeRate            float64       `json:"exchange_rate" bson:"exchange_rate" example:"3.2"`
	ShippingCostUSD         float64       `json:"shipping_cost_usd" bson:"shipping_cost_usd" example:"4500"`
	Expense                 ExpensePolicy `json:"expense" bson:"expense"`
	FactorySurchargePercent float64       `json:"factory_surcharge_percent,omitempty" bson:"factory_surcharge_percent,omitempty" example:"0"`
}

// Normalize returns the context with defaults applied for fields older
// snapshots did not carry.
func (p PricingContext) Normalize() PricingContext {
	if p.FormulaVersion == 0 {
		p.FormulaVersion = CurrentFormulaVersion
	}
	if p.Expense.Type == "" {
		p.Expense.Type = ExpensePercent
	}
	return p
}

// Validate checks the context after Normalize.
func (p PricingContext) Validate() error {
	if p.FormulaVersion != CurrentFormulaVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedFormulaVersion, p.FormulaVersion)
	}
	if p.ExchangeRate <= 0 {
		return &ContractError{Field: "exchange_rate", Message: fmt.Sprintf("must be positive, got %g", p.ExchangeRate)}
	}
	if p.ShippingCostUSD < 0 {
		return &ContractError{Field: "shipping_cost_usd", Message: "must not be negative"}
	}
	switch p.Expense.Type {
	case ExpensePercent, ExpenseFixed:
	default:
		return &ContractError{Field: "expense.type", Message: fmt.Sprintf("unknown expense type %q", p.Expense.Type)}
	}
	if p.Expense.Value < 0 {
		return &ContractError{Field: "expense.value", Message: "must not be negative"}
	}
	return nil
}

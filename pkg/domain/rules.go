package domain

import (
	"context"
	"fmt"
	"strings"
)

// Severity classifies how a rule violation affects order submission.
type Severity string

const (
	// SeverityBlock rejects the order.
	SeverityBlock Severity = "block"
	// SeverityWarn lets the order through but flags it for review.
	SeverityWarn Severity = "warn"
	// SeverityLog records an observation without further effect.
	SeverityLog Severity = "log"
)

// Violation reports a failed order rule evaluation.
type Violation struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Field    string   `json:"field,omitempty"`
}

// Result aggregates violations from the order rules engine.
type Result struct {
	Violations []Violation `json:"violations,omitempty"`
}

// Merge appends violations from another result.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking returns true if the result contains blocking violations.
func (r Result) HasBlocking() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			return true
		}
	}
	return false
}

// OrderValidationError is returned when blocking violations reject an order.
type OrderValidationError struct {
	Result Result
}

func (e OrderValidationError) Error() string {
	var fields []string
	for _, v := range e.Result.Violations {
		if v.Severity == SeverityBlock {
			fields = append(fields, v.Message)
		}
	}
	if len(fields) == 0 {
		return "order rejected by validation rules"
	}
	return "order rejected: " + strings.Join(fields, "; ")
}

// OrderRule is one validation executed against a submitted order.
type OrderRule interface {
	Name() string
	Evaluate(ctx context.Context, order OrderRequest) Result
}

// OrderRulesEngine orchestrates order rule evaluation.
type OrderRulesEngine struct {
	rules []OrderRule
}

// NewOrderRulesEngine constructs an engine preloaded with the storefront's
// built-in rules.
func NewOrderRulesEngine() *OrderRulesEngine {
	e := &OrderRulesEngine{}
	e.Register(RequiredFieldsRule{})
	e.Register(NonEmptyItemsRule{})
	e.Register(PositiveQuantitiesRule{})
	e.Register(KnownDeliveryRule{})
	e.Register(LargeOrderRule{Threshold: 50})
	return e
}

// NewEmptyOrderRulesEngine constructs an engine with no rules registered.
func NewEmptyOrderRulesEngine() *OrderRulesEngine {
	return &OrderRulesEngine{}
}

// Register appends a rule to the engine.
func (e *OrderRulesEngine) Register(rule OrderRule) {
	e.rules = append(e.rules, rule)
}

// Evaluate executes all registered rules and aggregates their results.
func (e *OrderRulesEngine) Evaluate(ctx context.Context, order OrderRequest) Result {
	var combined Result
	for _, rule := range e.rules {
		combined.Merge(rule.Evaluate(ctx, order))
	}
	return combined
}

// RequiredFieldsRule blocks orders missing customer contact details.
type RequiredFieldsRule struct{}

func (RequiredFieldsRule) Name() string { return "order-required-fields" }

func (r RequiredFieldsRule) Evaluate(_ context.Context, order OrderRequest) Result {
	var res Result
	check := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			res.Violations = append(res.Violations, Violation{
				Rule:     r.Name(),
				Severity: SeverityBlock,
				Message:  fmt.Sprintf("%s is required", field),
				Field:    field,
			})
		}
	}
	check("name", order.Name)
	check("phone", order.Phone)
	check("address", order.Address)
	check("delivery", string(order.Delivery))
	return res
}

// NonEmptyItemsRule blocks orders with no line items.
type NonEmptyItemsRule struct{}

func (NonEmptyItemsRule) Name() string { return "order-non-empty" }

func (r NonEmptyItemsRule) Evaluate(_ context.Context, order OrderRequest) Result {
	if len(order.Items) > 0 {
		return Result{}
	}
	return Result{Violations: []Violation{{
		Rule:     r.Name(),
		Severity: SeverityBlock,
		Message:  "order must contain at least one item",
		Field:    "items",
	}}}
}

// PositiveQuantitiesRule blocks line items whose quantity escaped
// normalization. Items decoded through the domain layer always satisfy this;
// the rule guards programmatic construction.
type PositiveQuantitiesRule struct{}

func (PositiveQuantitiesRule) Name() string { return "order-positive-qty" }

func (r PositiveQuantitiesRule) Evaluate(_ context.Context, order OrderRequest) Result {
	var res Result
	for _, it := range order.Items {
		if it.Qty < 1 {
			res.Violations = append(res.Violations, Violation{
				Rule:     r.Name(),
				Severity: SeverityBlock,
				Message:  fmt.Sprintf("item %s has non-positive quantity", it.ID),
				Field:    "items",
			})
		}
	}
	return res
}

// KnownDeliveryRule blocks delivery methods the storefront does not offer.
type KnownDeliveryRule struct{}

func (KnownDeliveryRule) Name() string { return "order-known-delivery" }

func (r KnownDeliveryRule) Evaluate(_ context.Context, order OrderRequest) Result {
	switch order.Delivery {
	case DeliveryExpress, DeliveryStandard, DeliveryPickup, "":
		// The empty method is reported by RequiredFieldsRule already.
		return Result{}
	default:
		return Result{Violations: []Violation{{
			Rule:     r.Name(),
			Severity: SeverityBlock,
			Message:  fmt.Sprintf("unknown delivery method %q", order.Delivery),
			Field:    "delivery",
		}}}
	}
}

// LargeOrderRule flags unusually large orders for manual review.
type LargeOrderRule struct {
	Threshold int
}

func (LargeOrderRule) Name() string { return "order-large-advisory" }

func (r LargeOrderRule) Evaluate(_ context.Context, order OrderRequest) Result {
	threshold := r.Threshold
	if threshold <= 0 {
		threshold = 50
	}
	total := 0
	for _, it := range order.Items {
		total += it.Qty
	}
	if total <= threshold {
		return Result{}
	}
	return Result{Violations: []Violation{{
		Rule:     r.Name(),
		Severity: SeverityWarn,
		Message:  fmt.Sprintf("order of %d units exceeds review threshold %d", total, threshold),
		Field:    "items",
	}}}
}

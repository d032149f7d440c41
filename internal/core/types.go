package core

import "oceankicks/pkg/domain"

// Aliases keep service and adapter signatures concise while the canonical
// definitions stay in the dependency-free domain package.
type (
	LineItem          = domain.LineItem
	ItemIdentity      = domain.ItemIdentity
	CartState         = domain.CartState
	CartAction        = domain.CartAction
	CartStore         = domain.CartStore
	Product           = domain.Product
	ProductSummary    = domain.ProductSummary
	ListFilters       = domain.ListFilters
	OrderRequest      = domain.OrderRequest
	OrderConfirmation = domain.OrderConfirmation
	Result            = domain.Result
	Violation         = domain.Violation
	Severity          = domain.Severity
)

const (
	SeverityBlock = domain.SeverityBlock
	SeverityWarn  = domain.SeverityWarn
	SeverityLog   = domain.SeverityLog
)

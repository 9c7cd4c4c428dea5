package repository

import (
	"context"

	"github.com/sangkips/confreg-invoicing/pkg/fira"
)

// InvoiceGateway defines the outbound invoicing provider interface
type InvoiceGateway interface {
	IsConfigured() bool
	SubmitOrder(ctx context.Context, order *fira.WebshopOrder) (*fira.InvoiceResult, error)
	GetOrderStatus(ctx context.Context, id string) *fira.InvoiceResult
}

package dto

import "github.com/shopspring/decimal"

// ReceiptRequest body para POST /api/ledger/receipts.
type ReceiptRequest struct {
	ProductID    string          `json:"product_id"`
	Qty          decimal.Decimal `json:"qty"`
	ToLocationID string          `json:"to_location_id"`
	Ref          string          `json:"ref,omitempty"`
}

// PickRequest body para POST /api/ledger/picks.
type PickRequest struct {
	ProductID      string          `json:"product_id"`
	Qty            decimal.Decimal `json:"qty"`
	FromLocationID string          `json:"from_location_id"`
	Ref            string          `json:"ref,omitempty"`
}

// TransferRequest body para POST /api/ledger/transfers.
type TransferRequest struct {
	ProductID      string          `json:"product_id"`
	Qty            decimal.Decimal `json:"qty"`
	FromLocationID string          `json:"from_location_id"`
	ToLocationID   string          `json:"to_location_id"`
	Ref            string          `json:"ref,omitempty"`
}

// AvailabilityResponse respuesta de GET /api/ledger/availability: el disponible
// autoritativo calculado por replay del log (no la cache).
type AvailabilityResponse struct {
	ProductID  string          `json:"product_id"`
	LocationID string          `json:"location_id"`
	Available  decimal.Decimal `json:"available"`
}

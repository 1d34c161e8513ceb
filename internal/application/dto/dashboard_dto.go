package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// LowStockRowDTO producto con saldo total bajo (neto de RECEIPT − PICK en todas
// las ubicaciones; los TRANSFER no cambian el total del producto).
type LowStockRowDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Qty       decimal.Decimal `json:"qty"`
}

// DashboardSummaryDTO resumen del tablero: KPIs del día, catálogos, actividad
// reciente y productos con stock bajo.
type DashboardSummaryDTO struct {
	ReceiptsToday  decimal.Decimal    `json:"receipts_today"`
	PicksToday     decimal.Decimal    `json:"picks_today"`
	TotalProducts  int                `json:"total_products"`
	TotalLocations int                `json:"total_locations"`
	Recent         []*entity.Movement `json:"recent"`
	LowStock       []LowStockRowDTO   `json:"low_stock"`
	DateLabel      string             `json:"date_label"`
}

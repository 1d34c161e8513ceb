// Package analytics contiene la agregación de negocio para el tablero: KPIs del
// día, actividad reciente y stock bajo, todo derivado por replay del log de
// movimientos (misma convención de signos que el cálculo de disponible).
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

const (
	dashboardRecentSize   = 10 // movimientos en el widget de actividad
	dashboardLowStockSize = 6  // productos en el widget de stock bajo
)

// lowStockThreshold: saldo total por producto bajo el cual entra al widget.
var lowStockThreshold = decimal.NewFromInt(10)

// DashboardUseCase genera el resumen del tablero.
//
// Fuente de datos: el log de movimientos (autoritativo) más los catálogos; no lee
// el stockLedger, así el tablero nunca depende del desfase de la cache.
type DashboardUseCase struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		movementRepo: movementRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres lecturas en paralelo (movimientos, productos, ubicaciones) y luego la
// agregación en memoria:
//  1. KPIs de hoy: suma de qty de RECEIPT y de PICK con timestamp dentro del día.
//  2. Actividad reciente: últimos 10 movimientos por timestamp desc.
//  3. Stock bajo: neto RECEIPT−PICK por producto (TRANSFER no cambia el total),
//     umbral 10, ascendente, top 6.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type movementsResult struct {
		movements []*entity.Movement
		err       error
	}
	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type locationsResult struct {
		locations []*entity.Location
		err       error
	}

	movCh := make(chan movementsResult, 1)
	prodCh := make(chan productsResult, 1)
	locCh := make(chan locationsResult, 1)

	go func() {
		movements, err := uc.movementRepo.ListAll()
		movCh <- movementsResult{movements, err}
	}()
	go func() {
		products, err := uc.productRepo.List()
		prodCh <- productsResult{products, err}
	}()
	go func() {
		locations, err := uc.locationRepo.List()
		locCh <- locationsResult{locations, err}
	}()

	mov := <-movCh
	prod := <-prodCh
	loc := <-locCh

	if mov.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", mov.err)
	}
	if prod.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", prod.err)
	}
	if loc.err != nil {
		return nil, fmt.Errorf("dashboard: ubicaciones: %w", loc.err)
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	receiptsToday := decimal.Zero
	picksToday := decimal.Zero
	netByProduct := make(map[string]decimal.Decimal)
	for _, m := range mov.movements {
		inToday := !m.Timestamp.Before(todayStart) && !m.Timestamp.After(todayEnd)
		switch m.Type {
		case entity.MovementTypeRECEIPT:
			if inToday {
				receiptsToday = receiptsToday.Add(m.Qty)
			}
			netByProduct[m.ProductID] = netByProduct[m.ProductID].Add(m.Qty)
		case entity.MovementTypePICK:
			if inToday {
				picksToday = picksToday.Add(m.Qty)
			}
			netByProduct[m.ProductID] = netByProduct[m.ProductID].Sub(m.Qty)
		}
		// TRANSFER solo mueve entre ubicaciones: no afecta KPIs ni el neto por producto.
	}

	recent := make([]*entity.Movement, len(mov.movements))
	copy(recent, mov.movements)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})
	if len(recent) > dashboardRecentSize {
		recent = recent[:dashboardRecentSize]
	}

	nameByID := make(map[string]string, len(prod.products))
	for _, p := range prod.products {
		nameByID[p.ID] = p.Name
	}
	lowStock := make([]dto.LowStockRowDTO, 0)
	for productID, qty := range netByProduct {
		if qty.GreaterThanOrEqual(lowStockThreshold) {
			continue
		}
		name := nameByID[productID]
		if name == "" {
			name = productID
		}
		lowStock = append(lowStock, dto.LowStockRowDTO{ProductID: productID, Name: name, Qty: qty})
	}
	sort.Slice(lowStock, func(i, j int) bool {
		if !lowStock[i].Qty.Equal(lowStock[j].Qty) {
			return lowStock[i].Qty.LessThan(lowStock[j].Qty)
		}
		return lowStock[i].ProductID < lowStock[j].ProductID
	})
	if len(lowStock) > dashboardLowStockSize {
		lowStock = lowStock[:dashboardLowStockSize]
	}

	return &dto.DashboardSummaryDTO{
		ReceiptsToday:  receiptsToday,
		PicksToday:     picksToday,
		TotalProducts:  len(prod.products),
		TotalLocations: len(loc.locations),
		Recent:         recent,
		LowStock:       lowStock,
		DateLabel:      dayLabel(now),
	}, nil
}

// dayLabel devuelve una etiqueta legible del día, ej: "28 de Agosto 2026".
func dayLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%d de %s %d", t.Day(), months[t.Month()-1], t.Year())
}

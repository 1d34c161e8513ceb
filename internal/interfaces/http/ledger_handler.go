package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/ledger"
)

// LedgerHandler maneja las peticiones HTTP del kardex: entradas, salidas,
// traslados, historial, saldos y disponible.
type LedgerHandler struct {
	uc *ledger.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// RecordReceipt godoc
// @Summary      Registrar entrada de mercancía (RECEIPT)
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiptRequest  true  "product_id, qty, to_location_id, ref opcional"
// @Success      201   {object}  entity.Movement
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ledger/receipts [post]
func (h *LedgerHandler) RecordReceipt(c *fiber.Ctx) error {
	var in dto.ReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.uc.RecordReceipt(c.Context(), ledger.ReceiptInput{
		ProductID:    in.ProductID,
		Qty:          in.Qty,
		ToLocationID: in.ToLocationID,
		Ref:          in.Ref,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movement)
}

// RecordPick godoc
// @Summary      Registrar salida (PICK); rechaza si qty excede el disponible
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PickRequest  true  "product_id, qty, from_location_id, ref opcional"
// @Success      201   {object}  entity.Movement
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/picks [post]
func (h *LedgerHandler) RecordPick(c *fiber.Ctx) error {
	var in dto.PickRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.uc.RecordPick(c.Context(), ledger.PickInput{
		ProductID:      in.ProductID,
		Qty:            in.Qty,
		FromLocationID: in.FromLocationID,
		Ref:            in.Ref,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movement)
}

// RecordTransfer godoc
// @Summary      Registrar traslado entre ubicaciones (TRANSFER)
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "product_id, qty, from_location_id, to_location_id"
// @Success      201   {object}  entity.Movement
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/transfers [post]
func (h *LedgerHandler) RecordTransfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.uc.RecordTransfer(c.Context(), ledger.TransferInput{
		ProductID:      in.ProductID,
		Qty:            in.Qty,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Ref:            in.Ref,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movement)
}

// ListMovements godoc
// @Summary      Historial de movimientos (timestamp desc)
// @Tags         ledger
// @Produce      json
// @Param        type   query  string  false  "RECEIPT | PICK | TRANSFER"
// @Param        limit  query  int     false  "máximo de filas (0 = todas)"
// @Success      200  {array}  entity.Movement
// @Router       /api/ledger/movements [get]
func (h *LedgerHandler) ListMovements(c *fiber.Ctx) error {
	movements, err := h.uc.ListMovements(c.Query("type"), c.QueryInt("limit"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(movements), "movements": movements})
}

// ListStock godoc
// @Summary      Saldos actuales del stockLedger (cache de lectura, qty > 0)
// @Tags         ledger
// @Produce      json
// @Param        product_id   query  string  false  "filtrar por producto"
// @Param        location_id  query  string  false  "filtrar por ubicación"
// @Success      200  {array}  entity.BalanceRow
// @Router       /api/ledger/stock [get]
func (h *LedgerHandler) ListStock(c *fiber.Ctx) error {
	rows, err := h.uc.ListStock(c.Query("product_id"), c.Query("location_id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(rows), "stock": rows})
}

// GetAvailability godoc
// @Summary      Disponible autoritativo por replay del log (no la cache)
// @Tags         ledger
// @Produce      json
// @Param        product_id   query  string  true  "producto"
// @Param        location_id  query  string  true  "ubicación"
// @Success      200  {object}  dto.AvailabilityResponse
// @Router       /api/ledger/availability [get]
func (h *LedgerHandler) GetAvailability(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	locationID := c.Query("location_id")
	if productID == "" || locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y location_id son obligatorios"})
	}
	available, err := h.uc.AvailableAt(productID, locationID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.AvailabilityResponse{
		ProductID:  productID,
		LocationID: locationID,
		Available:  available,
	})
}

// RebuildLedger godoc
// @Summary      Reconstruir el stockLedger completo desde el log de movimientos
// @Tags         ledger
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/ledger/rebuild [post]
func (h *LedgerHandler) RebuildLedger(c *fiber.Ctx) error {
	count, err := h.uc.RebuildLedger(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"rows": count})
}

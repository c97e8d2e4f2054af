package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gimnasio-api/internal/application/dto"
	"github.com/jhoicas/Gimnasio-api/internal/application/payments"
	"github.com/jhoicas/Gimnasio-api/internal/domain"
)

// PaymentHandler maneja renovaciones y el historial de pagos.
type PaymentHandler struct {
	renewUC   *payments.RenewUseCase
	historyUC *payments.HistoryUseCase
	receiptUC *payments.ReceiptPDFUseCase
}

// NewPaymentHandler construye el handler de pagos.
func NewPaymentHandler(renewUC *payments.RenewUseCase, historyUC *payments.HistoryUseCase, receiptUC *payments.ReceiptPDFUseCase) *PaymentHandler {
	return &PaymentHandler{renewUC: renewUC, historyUC: historyUC, receiptUC: receiptUC}
}

// Renew godoc
// @Summary      Renovar membresía (extiende vencimiento y registra el pago)
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RenewRequest  true  "member_id, amount, extend_days"
// @Success      200   {object}  dto.RenewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/payments [post]
func (h *PaymentHandler) Renew(c *fiber.Ctx) error {
	var in dto.RenewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.renewUC.Renew(c.Context(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "member_id y extend_days son requeridos"})
		case domain.ErrMemberNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "miembro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Historial de pagos
// @Tags         payments
// @Produce      json
// @Param        member_id  query  string  false  "Filtrar por miembro"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.PaymentListResponse
// @Router       /api/admin/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.historyUC.List(c.Query("member_id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Recibo de un pago en PDF
// @Tags         payments
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/payments/{id}/receipt [get]
func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, filename, err := h.receiptUC.DownloadReceiptPDF(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pago no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

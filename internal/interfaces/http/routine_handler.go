package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gimnasio-api/internal/application/dto"
	"github.com/jhoicas/Gimnasio-api/internal/application/routine"
	"github.com/jhoicas/Gimnasio-api/internal/domain"
)

// RoutineHandler maneja las plantillas de rutina del propio miembro y su
// proyección semanal.
type RoutineHandler struct {
	uc *routine.RoutineUseCase
}

// NewRoutineHandler construye el handler de rutinas.
func NewRoutineHandler(uc *routine.RoutineUseCase) *RoutineHandler {
	return &RoutineHandler{uc: uc}
}

// ListTemplates godoc
// @Summary      Plantillas de rutina almacenadas
// @Tags         routines
// @Produce      json
// @Success      200  {object}  dto.TemplateListResponse
// @Router       /api/member/routines-template [get]
func (h *RoutineHandler) ListTemplates(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpsertTemplate godoc
// @Summary      Guardar plantilla de un día (vacía = borrar)
// @Tags         routines
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertTemplateRequest  true  "day_of_week, titulo, descripcion"
// @Success      200   {object}  dto.UpsertTemplateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/member/routines-template [post]
func (h *RoutineHandler) UpsertTemplate(c *fiber.Ctx) error {
	var in dto.UpsertTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Upsert(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidDayOfWeek {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DAY", Message: "day_of_week debe estar entre 0 y 6"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Week godoc
// @Summary      Rutinas proyectadas sobre los próximos 7 días
// @Tags         routines
// @Produce      json
// @Success      200  {object}  dto.WeekResponse
// @Router       /api/member/workouts/week [get]
func (h *RoutineHandler) Week(c *fiber.Ctx) error {
	out, err := h.uc.Week(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

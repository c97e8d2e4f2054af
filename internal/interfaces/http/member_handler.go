package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gimnasio-api/internal/application/dto"
	"github.com/jhoicas/Gimnasio-api/internal/application/usecase"
	"github.com/jhoicas/Gimnasio-api/internal/domain"
	"github.com/jhoicas/Gimnasio-api/internal/infrastructure/storage"
)

// MemberHandler maneja las peticiones del admin sobre miembros.
type MemberHandler struct {
	uc      *usecase.MemberUseCase
	avatars *storage.AvatarStore
}

// NewMemberHandler construye el handler inyectando el caso de uso y el store de avatares.
func NewMemberHandler(uc *usecase.MemberUseCase, avatars *storage.AvatarStore) *MemberHandler {
	return &MemberHandler{uc: uc, avatars: avatars}
}

// Create godoc
// @Summary      Crear miembro
// @Tags         members
// @Accept       multipart/form-data
// @Produce      json
// @Param        cedula    formData  string  true   "Cédula"
// @Param        nombre    formData  string  true   "Nombre"
// @Param        email     formData  string  false  "Email"
// @Param        telefono  formData  string  false  "Teléfono"
// @Param        password  formData  string  true   "Password"
// @Param        plan      formData  string  true   "dia | semana | mes"
// @Param        avatar    formData  file    false  "Avatar"
// @Success      201  {object}  dto.MemberResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/members [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	in := dto.CreateMemberRequest{
		Cedula:   c.FormValue("cedula"),
		Nombre:   c.FormValue("nombre"),
		Email:    c.FormValue("email"),
		Telefono: c.FormValue("telefono"),
		Password: c.FormValue("password"),
		Plan:     c.FormValue("plan"),
	}

	// Primero el archivo, después la fila: si el upload falla no queda una
	// ruta apuntando a nada.
	if fh, err := c.FormFile("avatar"); err == nil && fh != nil {
		path, err := h.avatars.Save(fh)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo guardar el avatar"})
		}
		in.AvatarPath = path
	}

	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cédula, nombre, password y plan son obligatorios"})
		case domain.ErrInvalidPlan:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PLAN", Message: "plan inválido: debe ser dia, semana o mes"})
		case domain.ErrCedulaAlreadyExists:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CEDULA_EXISTS", Message: "ya existe un miembro activo con esa cédula"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar miembros activos
// @Tags         members
// @Produce      json
// @Success      200  {object}  dto.MemberListResponse
// @Router       /api/admin/members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener miembro por ID (activo o no)
// @Tags         members
// @Produce      json
// @Param        id   path  string  true  "ID del miembro"
// @Success      200  {object}  dto.MemberResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/members/{id} [get]
func (h *MemberHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "miembro no encontrado"})
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Baja lógica de un miembro
// @Tags         members
// @Produce      json
// @Param        id   path  string  true  "ID del miembro"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/members/{id} [delete]
func (h *MemberHandler) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Deactivate(id); err != nil {
		if err == domain.ErrMemberNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "miembro no encontrado o ya dado de baja"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.OKResponse{OK: true})
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gimnasio-api/internal/application/dto"
	"github.com/jhoicas/Gimnasio-api/internal/application/usecase"
	"github.com/jhoicas/Gimnasio-api/internal/domain"
	"github.com/jhoicas/Gimnasio-api/internal/infrastructure/storage"
)

// ProfileHandler maneja las peticiones del propio miembro sobre su perfil.
type ProfileHandler struct {
	uc      *usecase.MemberUseCase
	avatars *storage.AvatarStore
}

// NewProfileHandler construye el handler del perfil propio.
func NewProfileHandler(uc *usecase.MemberUseCase, avatars *storage.AvatarStore) *ProfileHandler {
	return &ProfileHandler{uc: uc, avatars: avatars}
}

// Me godoc
// @Summary      Perfil propio con días restantes
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.MemberResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/member/me [get]
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetUserID(c))
	if err != nil {
		if err == domain.ErrMemberNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "miembro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar perfil propio (parcial: máquinas favoritas, metas, avatar)
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        fav_machines  formData  string  false  "Máquinas favoritas"
// @Param        goals         formData  string  false  "Metas"
// @Param        avatar        formData  file    false  "Avatar"
// @Success      200  {object}  dto.MemberResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/member/profile [post]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest

	// Campo ausente en el form = conservar el valor almacenado.
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if vals, ok := form.Value["fav_machines"]; ok && len(vals) > 0 {
			in.FavMachines = &vals[0]
		}
		if vals, ok := form.Value["goals"]; ok && len(vals) > 0 {
			in.Goals = &vals[0]
		}
	}

	if fh, err := c.FormFile("avatar"); err == nil && fh != nil {
		path, err := h.avatars.Save(fh)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo guardar el avatar"})
		}
		in.AvatarPath = &path
	}

	out, err := h.uc.UpdateProfile(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrMemberNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "miembro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

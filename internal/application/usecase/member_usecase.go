package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gimnasio-api/internal/application/dto"
	"github.com/jhoicas/Gimnasio-api/internal/domain"
	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
	"github.com/jhoicas/Gimnasio-api/internal/domain/membership"
	"github.com/jhoicas/Gimnasio-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// MemberUseCase casos de uso del ciclo de vida de miembros (lado admin) y del
// perfil propio (lado miembro).
type MemberUseCase struct {
	repo repository.MemberRepository
}

// NewMemberUseCase construye el caso de uso con el puerto de persistencia.
func NewMemberUseCase(repo repository.MemberRepository) *MemberUseCase {
	return &MemberUseCase{repo: repo}
}

// Create da de alta un miembro: valida plan y obligatorios, rechaza cédula
// duplicada entre activos, hashea el password con bcrypt y fija
// fecha_inicio=hoy y fecha_vencimiento=hoy+días del plan.
func (uc *MemberUseCase) Create(in dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	if in.Cedula == "" || in.Nombre == "" || in.Password == "" || in.Plan == "" {
		return nil, domain.ErrInvalidInput
	}
	if !membership.ValidPlan(in.Plan) {
		return nil, domain.ErrInvalidPlan
	}

	existing, err := uc.repo.GetActiveByCedula(in.Cedula)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCedulaAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	hoy := membership.Hoy()
	venc, err := membership.VencimientoInicial(hoy, in.Plan)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	member := &entity.Member{
		ID:               uuid.New().String(),
		Cedula:           in.Cedula,
		Nombre:           in.Nombre,
		Email:            in.Email,
		Telefono:         in.Telefono,
		PasswordHash:     string(hash),
		Plan:             in.Plan,
		FechaInicio:      hoy,
		FechaVencimiento: &venc,
		Activo:           true,
		Avatar:           in.AvatarPath,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(member); err != nil {
		return nil, err
	}
	return toMemberResponse(member, hoy), nil
}

// ListActive lista los miembros activos, los más recientes primero.
func (uc *MemberUseCase) ListActive() (*dto.MemberListResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	hoy := membership.Hoy()
	items := make([]dto.MemberResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMemberResponse(m, hoy))
	}
	return &dto.MemberListResponse{Items: items}, nil
}

// GetByID obtiene un miembro sin importar su estado activo. (nil, nil) si no existe.
func (uc *MemberUseCase) GetByID(id string) (*dto.MemberResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return toMemberResponse(m, membership.Hoy()), nil
}

// Deactivate baja lógica (activo=false). Devuelve domain.ErrMemberNotFound si
// el miembro no existe o ya estaba inactivo: la segunda baja no es idempotente.
func (uc *MemberUseCase) Deactivate(id string) error {
	found, err := uc.repo.Deactivate(id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrMemberNotFound
	}
	return nil
}

// Me devuelve el perfil del propio miembro (solo activos).
func (uc *MemberUseCase) Me(memberID string) (*dto.MemberResponse, error) {
	m, err := uc.repo.GetActiveByID(memberID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrMemberNotFound
	}
	return toMemberResponse(m, membership.Hoy()), nil
}

// UpdateProfile actualización parcial del perfil propio: los campos nil
// conservan el valor almacenado. Devuelve la proyección actualizada.
func (uc *MemberUseCase) UpdateProfile(memberID string, in dto.UpdateProfileRequest) (*dto.MemberResponse, error) {
	m, err := uc.repo.GetActiveByID(memberID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrMemberNotFound
	}

	if in.FavMachines != nil {
		m.FavMachines = *in.FavMachines
	}
	if in.Goals != nil {
		m.Goals = *in.Goals
	}
	if in.AvatarPath != nil {
		m.Avatar = *in.AvatarPath
	}
	m.UpdatedAt = time.Now()

	if err := uc.repo.UpdateProfile(m); err != nil {
		return nil, err
	}
	return toMemberResponse(m, membership.Hoy()), nil
}

func toMemberResponse(m *entity.Member, hoy time.Time) *dto.MemberResponse {
	if m == nil {
		return nil
	}
	dias := membership.DiasRestantes(m.FechaVencimiento, hoy)
	resp := &dto.MemberResponse{
		ID:            m.ID,
		Cedula:        m.Cedula,
		Nombre:        m.Nombre,
		Email:         m.Email,
		Telefono:      m.Telefono,
		Plan:          m.Plan,
		FechaInicio:   m.FechaInicio.Format(dto.DateLayout),
		DiasRestantes: dias,
		Estado:        membership.Estado(dias),
		Activo:        m.Activo,
		Avatar:        m.Avatar,
		FavMachines:   m.FavMachines,
		Goals:         m.Goals,
	}
	if m.FechaVencimiento != nil {
		resp.FechaVencimiento = m.FechaVencimiento.Format(dto.DateLayout)
	}
	return resp
}

package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gimnasio-api/internal/application/dto"
	"github.com/jhoicas/Gimnasio-api/internal/application/usecase"
	"github.com/jhoicas/Gimnasio-api/internal/domain"
	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
	"github.com/jhoicas/Gimnasio-api/internal/domain/membership"
)

// fakeMemberRepo implementación en memoria de repository.MemberRepository.
type fakeMemberRepo struct {
	members map[string]*entity.Member
	order   []string
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[string]*entity.Member)}
}

func (r *fakeMemberRepo) Create(m *entity.Member) error {
	cp := *m
	r.members[m.ID] = &cp
	r.order = append(r.order, m.ID)
	return nil
}

func (r *fakeMemberRepo) GetByID(id string) (*entity.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMemberRepo) GetActiveByID(id string) (*entity.Member, error) {
	m, ok := r.members[id]
	if !ok || !m.Activo {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMemberRepo) GetActiveByCedula(cedula string) (*entity.Member, error) {
	for _, m := range r.members {
		if m.Cedula == cedula && m.Activo {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMemberRepo) ListActive() ([]*entity.Member, error) {
	list := make([]*entity.Member, 0, len(r.members))
	for i := len(r.order) - 1; i >= 0; i-- {
		m := r.members[r.order[i]]
		if m.Activo {
			cp := *m
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeMemberRepo) Deactivate(id string) (bool, error) {
	m, ok := r.members[id]
	if !ok || !m.Activo {
		return false, nil
	}
	m.Activo = false
	return true, nil
}

func (r *fakeMemberRepo) GetForUpdate(id string) (*entity.Member, error) {
	return r.GetByID(id)
}

func (r *fakeMemberRepo) UpdateVencimiento(id string, venc time.Time) error {
	if m, ok := r.members[id]; ok {
		v := venc
		m.FechaVencimiento = &v
	}
	return nil
}

func (r *fakeMemberRepo) UpdateProfile(m *entity.Member) error {
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func altaRequest(cedula, plan string) dto.CreateMemberRequest {
	return dto.CreateMemberRequest{
		Cedula:   cedula,
		Nombre:   "Juan Pérez",
		Email:    "juan@example.com",
		Telefono: "3001234567",
		Password: "secreto123",
		Plan:     plan,
	}
}

func TestCreate_VencimientoPorPlan(t *testing.T) {
	casos := []struct {
		plan string
		dias int
	}{
		{membership.PlanDia, 1},
		{membership.PlanSemana, 7},
		{membership.PlanMes, 30},
	}

	for _, c := range casos {
		repo := newFakeMemberRepo()
		uc := usecase.NewMemberUseCase(repo)

		resp, err := uc.Create(altaRequest("100"+c.plan, c.plan))
		require.NoError(t, err)
		require.NotNil(t, resp)

		esperado := membership.Hoy().AddDate(0, 0, c.dias).Format(dto.DateLayout)
		assert.Equal(t, esperado, resp.FechaVencimiento, "plan %q", c.plan)
		require.NotNil(t, resp.DiasRestantes)
		assert.Equal(t, c.dias, *resp.DiasRestantes)
		assert.True(t, resp.Activo)
	}
}

func TestCreate_HasheaPassword(t *testing.T) {
	repo := newFakeMemberRepo()
	uc := usecase.NewMemberUseCase(repo)

	resp, err := uc.Create(altaRequest("1001", membership.PlanMes))
	require.NoError(t, err)

	m := repo.members[resp.ID]
	require.NotNil(t, m)
	assert.NotEqual(t, "secreto123", m.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte("secreto123")))
}

func TestCreate_CedulaDuplicadaEntreActivos(t *testing.T) {
	repo := newFakeMemberRepo()
	uc := usecase.NewMemberUseCase(repo)

	_, err := uc.Create(altaRequest("1002", membership.PlanMes))
	require.NoError(t, err)

	_, err = uc.Create(altaRequest("1002", membership.PlanDia))
	assert.ErrorIs(t, err, domain.ErrCedulaAlreadyExists)
}

func TestCreate_CedulaReutilizableTrasBaja(t *testing.T) {
	repo := newFakeMemberRepo()
	uc := usecase.NewMemberUseCase(repo)

	primero, err := uc.Create(altaRequest("1003", membership.PlanMes))
	require.NoError(t, err)
	require.NoError(t, uc.Deactivate(primero.ID))

	// La unicidad de cédula aplica solo entre activos: tras la baja, la misma
	// cédula puede darse de alta de nuevo.
	segundo, err := uc.Create(altaRequest("1003", membership.PlanSemana))
	require.NoError(t, err)
	assert.NotEqual(t, primero.ID, segundo.ID)
}

func TestCreate_ValidaEntrada(t *testing.T) {
	repo := newFakeMemberRepo()
	uc := usecase.NewMemberUseCase(repo)

	_, err := uc.Create(dto.CreateMemberRequest{Nombre: "sin cédula", Password: "x", Plan: membership.PlanMes})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(altaRequest("1004", "anual"))
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)
}

func TestDeactivate_NoEsIdempotente(t *testing.T) {
	repo := newFakeMemberRepo()
	uc := usecase.NewMemberUseCase(repo)

	resp, err := uc.Create(altaRequest("1005", membership.PlanMes))
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(resp.ID))
	// La segunda baja sobre el mismo miembro reporta no encontrado.
	assert.ErrorIs(t, uc.Deactivate(resp.ID), domain.ErrMemberNotFound)
	assert.ErrorIs(t, uc.Deactivate("no-existe"), domain.ErrMemberNotFound)
}

func TestListActive_ExcluyeInactivos(t *testing.T) {
	repo := newFakeMemberRepo()
	uc := usecase.NewMemberUseCase(repo)

	a, err := uc.Create(altaRequest("1006", membership.PlanMes))
	require.NoError(t, err)
	_, err = uc.Create(altaRequest("1007", membership.PlanMes))
	require.NoError(t, err)
	require.NoError(t, uc.Deactivate(a.ID))

	list, err := uc.ListActive()
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "1007", list.Items[0].Cedula)
}

func TestGetByID_IncluyeInactivosYNilSiNoExiste(t *testing.T) {
	repo := newFakeMemberRepo()
	uc := usecase.NewMemberUseCase(repo)

	resp, err := uc.Create(altaRequest("1008", membership.PlanMes))
	require.NoError(t, err)
	require.NoError(t, uc.Deactivate(resp.ID))

	// El detalle admin sí ve miembros inactivos.
	m, err := uc.GetByID(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.False(t, m.Activo)

	m, err = uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestMe_SoloActivos(t *testing.T) {
	repo := newFakeMemberRepo()
	uc := usecase.NewMemberUseCase(repo)

	resp, err := uc.Create(altaRequest("1009", membership.PlanMes))
	require.NoError(t, err)

	me, err := uc.Me(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "1009", me.Cedula)

	require.NoError(t, uc.Deactivate(resp.ID))
	_, err = uc.Me(resp.ID)
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestUpdateProfile_ParcialConservaCamposNil(t *testing.T) {
	repo := newFakeMemberRepo()
	uc := usecase.NewMemberUseCase(repo)

	resp, err := uc.Create(altaRequest("1010", membership.PlanMes))
	require.NoError(t, err)

	goals := "bajar de peso"
	out, err := uc.UpdateProfile(resp.ID, dto.UpdateProfileRequest{Goals: &goals})
	require.NoError(t, err)
	assert.Equal(t, "bajar de peso", out.Goals)
	assert.Empty(t, out.FavMachines)

	// Segunda actualización toca solo máquinas favoritas; goals se conserva.
	maquinas := "press banca, remo"
	out, err = uc.UpdateProfile(resp.ID, dto.UpdateProfileRequest{FavMachines: &maquinas})
	require.NoError(t, err)
	assert.Equal(t, "press banca, remo", out.FavMachines)
	assert.Equal(t, "bajar de peso", out.Goals)
}

func TestUpdateProfile_MiembroInexistente(t *testing.T) {
	repo := newFakeMemberRepo()
	uc := usecase.NewMemberUseCase(repo)

	goals := "x"
	_, err := uc.UpdateProfile("no-existe", dto.UpdateProfileRequest{Goals: &goals})
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

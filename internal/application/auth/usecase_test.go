package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gimnasio-api/internal/application/auth"
	"github.com/jhoicas/Gimnasio-api/internal/application/dto"
	"github.com/jhoicas/Gimnasio-api/internal/domain"
	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
	"github.com/jhoicas/Gimnasio-api/pkg/jwt"
)

type fakeAdminRepo struct {
	admins map[string]*entity.Admin // por username
}

func (r *fakeAdminRepo) Create(a *entity.Admin) error { r.admins[a.Username] = a; return nil }

func (r *fakeAdminRepo) GetByID(id string) (*entity.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) GetByUsername(username string) (*entity.Admin, error) {
	a, ok := r.admins[username]
	if !ok {
		return nil, nil
	}
	return a, nil
}

type fakeMemberRepo struct {
	members map[string]*entity.Member // por cédula, solo activos
}

func (r *fakeMemberRepo) Create(m *entity.Member) error { r.members[m.Cedula] = m; return nil }

func (r *fakeMemberRepo) GetByID(string) (*entity.Member, error) { return nil, nil }

func (r *fakeMemberRepo) GetActiveByID(string) (*entity.Member, error) { return nil, nil }

func (r *fakeMemberRepo) GetActiveByCedula(cedula string) (*entity.Member, error) {
	m, ok := r.members[cedula]
	if !ok || !m.Activo {
		return nil, nil
	}
	return m, nil
}

func (r *fakeMemberRepo) ListActive() ([]*entity.Member, error) { return nil, nil }

func (r *fakeMemberRepo) Deactivate(string) (bool, error) { return false, nil }

func (r *fakeMemberRepo) GetForUpdate(string) (*entity.Member, error) { return nil, nil }

func (r *fakeMemberRepo) UpdateVencimiento(string, time.Time) error { return nil }

func (r *fakeMemberRepo) UpdateProfile(*entity.Member) error { return nil }

const testSecret = "secreto-de-pruebas"

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func setupAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	adminRepo := &fakeAdminRepo{admins: map[string]*entity.Admin{
		"admin": {ID: "a1", Username: "admin", PasswordHash: hash(t, "admin123")},
	}}
	memberRepo := &fakeMemberRepo{members: map[string]*entity.Member{
		"1001": {ID: "m1", Cedula: "1001", PasswordHash: hash(t, "clave-miembro"), Activo: true},
		"1002": {ID: "m2", Cedula: "1002", PasswordHash: hash(t, "clave-baja"), Activo: false},
	}}
	return auth.NewAuthUseCase(adminRepo, memberRepo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "gimnasio-api-test",
	})
}

func TestLogin_AdminPorUsername(t *testing.T) {
	uc := setupAuth(t)

	resp, err := uc.Login(dto.LoginRequest{EmailOrUsername: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, resp.Role)

	userID, role, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "a1", userID)
	assert.Equal(t, auth.RoleAdmin, role)
}

func TestLogin_MiembroPorCedula(t *testing.T) {
	uc := setupAuth(t)

	resp, err := uc.Login(dto.LoginRequest{EmailOrUsername: "1001", Password: "clave-miembro"})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleMember, resp.Role)

	userID, role, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "m1", userID)
	assert.Equal(t, auth.RoleMember, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := setupAuth(t)

	_, err := uc.Login(dto.LoginRequest{EmailOrUsername: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{EmailOrUsername: "1001", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := setupAuth(t)

	_, err := uc.Login(dto.LoginRequest{EmailOrUsername: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"mismo error que password incorrecto, sin filtrar existencia")
}

func TestLogin_MiembroInactivoNoEntra(t *testing.T) {
	uc := setupAuth(t)

	_, err := uc.Login(dto.LoginRequest{EmailOrUsername: "1002", Password: "clave-baja"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

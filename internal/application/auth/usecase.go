package auth

import (
	"github.com/jhoicas/Gimnasio-api/internal/application/dto"
	"github.com/jhoicas/Gimnasio-api/internal/domain"
	"github.com/jhoicas/Gimnasio-api/internal/domain/repository"
	"github.com/jhoicas/Gimnasio-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Roles emitidos en el token.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login de admins y miembros.
type AuthUseCase struct {
	adminRepo  repository.AdminRepository
	memberRepo repository.MemberRepository
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, memberRepo repository.MemberRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, memberRepo: memberRepo, jwtCfg: jwtCfg}
}

// Login resuelve la credencial contra admins por username y, si no hay admin
// con ese nombre, contra miembros activos por cédula. Devuelve
// domain.ErrUnauthorized ante credenciales inválidas, sin distinguir si el
// usuario existe.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := uc.adminRepo.GetByUsername(in.EmailOrUsername)
	if err != nil {
		return nil, err
	}
	if admin != nil {
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)) != nil {
			return nil, domain.ErrUnauthorized
		}
		return uc.issue(admin.ID, RoleAdmin)
	}

	member, err := uc.memberRepo.GetActiveByCedula(in.EmailOrUsername)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(member.ID, RoleMember)
}

func (uc *AuthUseCase) issue(userID, role string) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, userID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Role: role}, nil
}

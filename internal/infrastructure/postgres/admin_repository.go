package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Gimnasio-api/internal/domain"
	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
	"github.com/jhoicas/Gimnasio-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación de AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador de admins. Pasar pool o tx (Querier).
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// Create persiste un nuevo admin.
func (r *AdminRepo) Create(a *entity.Admin) error {
	query := `
		INSERT INTO admins (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, a.ID, a.Username, a.PasswordHash, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByID obtiene un admin por ID.
func (r *AdminRepo) GetByID(id string) (*entity.Admin, error) {
	query := `SELECT id, username, password_hash, created_at FROM admins WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByUsername obtiene un admin por username.
func (r *AdminRepo) GetByUsername(username string) (*entity.Admin, error) {
	query := `SELECT id, username, password_hash, created_at FROM admins WHERE username = $1`
	return r.scanOne(query, username)
}

func (r *AdminRepo) scanOne(query string, args ...any) (*entity.Admin, error) {
	var a entity.Admin
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

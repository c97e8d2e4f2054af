package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Gimnasio-api/internal/domain"
	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
	"github.com/jhoicas/Gimnasio-api/internal/domain/repository"
)

var _ repository.MemberRepository = (*MemberRepo)(nil)

const memberColumns = `id, cedula, nombre, email, telefono, password_hash, plan,
	fecha_inicio, fecha_vencimiento, activo, avatar, fav_machines, goals,
	created_at, updated_at`

// MemberRepo implementación de MemberRepository sobre PostgreSQL (usable con pool o tx).
type MemberRepo struct {
	q Querier
}

// NewMemberRepository construye el adaptador de miembros. Pasar pool o tx (Querier).
func NewMemberRepository(q Querier) *MemberRepo {
	return &MemberRepo{q: q}
}

// Create persiste un nuevo miembro. Devuelve domain.ErrCedulaAlreadyExists si
// el índice parcial de cédula entre activos rechaza el insert.
func (r *MemberRepo) Create(m *entity.Member) error {
	query := `
		INSERT INTO members
			(id, cedula, nombre, email, telefono, password_hash, plan,
			 fecha_inicio, fecha_vencimiento, activo, avatar, fav_machines, goals,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Cedula, m.Nombre, m.Email, m.Telefono, m.PasswordHash, m.Plan,
		m.FechaInicio, m.FechaVencimiento, m.Activo, m.Avatar, m.FavMachines, m.Goals,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCedulaAlreadyExists
		}
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

// GetByID obtiene un miembro por ID, activo o no.
func (r *MemberRepo) GetByID(id string) (*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	return r.scanOne(query, id)
}

// GetActiveByID obtiene un miembro activo por ID.
func (r *MemberRepo) GetActiveByID(id string) (*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1 AND activo`
	return r.scanOne(query, id)
}

// GetActiveByCedula obtiene el miembro activo con esa cédula (único por índice parcial).
func (r *MemberRepo) GetActiveByCedula(cedula string) (*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE cedula = $1 AND activo`
	return r.scanOne(query, cedula)
}

// GetForUpdate obtiene el miembro y bloquea su fila (SELECT FOR UPDATE) para
// serializar renovaciones concurrentes sobre el mismo vencimiento.
func (r *MemberRepo) GetForUpdate(id string) (*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// ListActive lista miembros activos, los creados más recientemente primero.
func (r *MemberRepo) ListActive() ([]*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE activo ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()
	var list []*entity.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Deactivate baja lógica. Devuelve false si no había miembro activo con ese ID.
func (r *MemberRepo) Deactivate(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE members SET activo = false, updated_at = now() WHERE id = $1 AND activo`, id)
	if err != nil {
		return false, fmt.Errorf("deactivate member: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateVencimiento persiste la nueva fecha de vencimiento.
func (r *MemberRepo) UpdateVencimiento(id string, venc time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE members SET fecha_vencimiento = $2, updated_at = now() WHERE id = $1`, id, venc)
	if err != nil {
		return fmt.Errorf("update vencimiento: %w", err)
	}
	return nil
}

// UpdateProfile persiste los campos de perfil editables por el propio miembro.
func (r *MemberRepo) UpdateProfile(m *entity.Member) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE members SET fav_machines = $2, goals = $3, avatar = $4, updated_at = $5 WHERE id = $1`,
		m.ID, m.FavMachines, m.Goals, m.Avatar, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (r *MemberRepo) scanOne(query string, args ...any) (*entity.Member, error) {
	m, err := scanMember(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

// scanMember funciona con pgx.Row y pgx.Rows (ambos exponen Scan).
func scanMember(row pgx.Row) (*entity.Member, error) {
	var m entity.Member
	err := row.Scan(
		&m.ID, &m.Cedula, &m.Nombre, &m.Email, &m.Telefono, &m.PasswordHash, &m.Plan,
		&m.FechaInicio, &m.FechaVencimiento, &m.Activo, &m.Avatar, &m.FavMachines, &m.Goals,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

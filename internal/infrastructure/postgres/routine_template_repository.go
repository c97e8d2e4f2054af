package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
	"github.com/jhoicas/Gimnasio-api/internal/domain/repository"
)

var _ repository.RoutineTemplateRepository = (*RoutineTemplateRepo)(nil)

// RoutineTemplateRepo implementación de RoutineTemplateRepository sobre PostgreSQL.
type RoutineTemplateRepo struct {
	q Querier
}

// NewRoutineTemplateRepository construye el adaptador de plantillas. Pasar pool o tx (Querier).
func NewRoutineTemplateRepository(q Querier) *RoutineTemplateRepo {
	return &RoutineTemplateRepo{q: q}
}

// Upsert inserta o actualiza la plantilla del (member, day_of_week).
func (r *RoutineTemplateRepo) Upsert(t *entity.RoutineTemplate) error {
	query := `
		INSERT INTO member_routine_templates (id, member_id, day_of_week, titulo, descripcion)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (member_id, day_of_week)
		DO UPDATE SET titulo = EXCLUDED.titulo, descripcion = EXCLUDED.descripcion`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.MemberID, t.DayOfWeek, t.Titulo, t.Descripcion)
	if err != nil {
		return fmt.Errorf("upsert routine template: %w", err)
	}
	return nil
}

// Delete borra la plantilla del (member, day). Devuelve true si existía.
func (r *RoutineTemplateRepo) Delete(memberID string, dayOfWeek int) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM member_routine_templates WHERE member_id = $1 AND day_of_week = $2`,
		memberID, dayOfWeek)
	if err != nil {
		return false, fmt.Errorf("delete routine template: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByMember devuelve las plantillas del miembro ordenadas por día.
func (r *RoutineTemplateRepo) ListByMember(memberID string) ([]entity.RoutineTemplate, error) {
	query := `
		SELECT id, member_id, day_of_week, titulo, descripcion
		FROM member_routine_templates WHERE member_id = $1 ORDER BY day_of_week`
	rows, err := r.q.Query(context.Background(), query, memberID)
	if err != nil {
		return nil, fmt.Errorf("list routine templates: %w", err)
	}
	defer rows.Close()
	var list []entity.RoutineTemplate
	for rows.Next() {
		var t entity.RoutineTemplate
		if err := rows.Scan(&t.ID, &t.MemberID, &t.DayOfWeek, &t.Titulo, &t.Descripcion); err != nil {
			return nil, fmt.Errorf("scan routine template: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

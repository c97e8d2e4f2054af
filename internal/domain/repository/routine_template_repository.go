package repository

import "github.com/jhoicas/Gimnasio-api/internal/domain/entity"

// RoutineTemplateRepository define el puerto de persistencia para las
// plantillas de rutina (única por member + day_of_week).
type RoutineTemplateRepository interface {
	Upsert(t *entity.RoutineTemplate) error
	// Delete borra la plantilla del (member, day). Devuelve true si existía.
	Delete(memberID string, dayOfWeek int) (bool, error)
	ListByMember(memberID string) ([]entity.RoutineTemplate, error)
}

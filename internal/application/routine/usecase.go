package routine

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Gimnasio-api/internal/application/dto"
	"github.com/jhoicas/Gimnasio-api/internal/domain"
	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
	"github.com/jhoicas/Gimnasio-api/internal/domain/membership"
	domroutine "github.com/jhoicas/Gimnasio-api/internal/domain/routine"
	"github.com/jhoicas/Gimnasio-api/internal/domain/repository"
)

// RoutineUseCase casos de uso de plantillas de rutina y su proyección semanal.
type RoutineUseCase struct {
	repo repository.RoutineTemplateRepository
}

// NewRoutineUseCase construye el caso de uso con el puerto de persistencia.
func NewRoutineUseCase(repo repository.RoutineTemplateRepository) *RoutineUseCase {
	return &RoutineUseCase{repo: repo}
}

// Upsert guarda la plantilla del día. Con título y descripción vacíos borra la
// fila del día (si existe) y reporta deleted=true. day_of_week fuera de [0,6]
// es domain.ErrInvalidDayOfWeek.
func (uc *RoutineUseCase) Upsert(memberID string, in dto.UpsertTemplateRequest) (*dto.UpsertTemplateResponse, error) {
	if in.DayOfWeek == nil || !domroutine.ValidDayOfWeek(*in.DayOfWeek) {
		return nil, domain.ErrInvalidDayOfWeek
	}

	if in.Titulo == "" && in.Descripcion == "" {
		if _, err := uc.repo.Delete(memberID, *in.DayOfWeek); err != nil {
			return nil, err
		}
		return &dto.UpsertTemplateResponse{OK: true, Deleted: true}, nil
	}

	t := &entity.RoutineTemplate{
		ID:          uuid.New().String(),
		MemberID:    memberID,
		DayOfWeek:   *in.DayOfWeek,
		Titulo:      in.Titulo,
		Descripcion: in.Descripcion,
	}
	if err := uc.repo.Upsert(t); err != nil {
		return nil, err
	}
	return &dto.UpsertTemplateResponse{OK: true}, nil
}

// List devuelve las plantillas almacenadas del miembro.
func (uc *RoutineUseCase) List(memberID string) (*dto.TemplateListResponse, error) {
	list, err := uc.repo.ListByMember(memberID)
	if err != nil {
		return nil, err
	}
	templates := make([]dto.TemplateResponse, 0, len(list))
	for _, t := range list {
		templates = append(templates, dto.TemplateResponse{
			DayOfWeek:   t.DayOfWeek,
			Titulo:      t.Titulo,
			Descripcion: t.Descripcion,
		})
	}
	return &dto.TemplateListResponse{Templates: templates}, nil
}

// Week proyecta las plantillas del miembro sobre los próximos 7 días
// calendario a partir de hoy.
func (uc *RoutineUseCase) Week(memberID string) (*dto.WeekResponse, error) {
	list, err := uc.repo.ListByMember(memberID)
	if err != nil {
		return nil, err
	}
	projected := domroutine.ProyectarSemana(list, membership.Hoy())
	workouts := make([]dto.WorkoutResponse, 0, len(projected))
	for _, w := range projected {
		workouts = append(workouts, dto.WorkoutResponse{
			Fecha:       w.Fecha.Format(dto.DateLayout),
			Titulo:      w.Titulo,
			Descripcion: w.Descripcion,
		})
	}
	return &dto.WeekResponse{Workouts: workouts}, nil
}

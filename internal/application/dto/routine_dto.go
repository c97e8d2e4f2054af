package dto

// UpsertTemplateRequest alta/edición de la plantilla de un día de la semana.
// DayOfWeek es puntero para distinguir 0 (domingo) de campo ausente.
type UpsertTemplateRequest struct {
	DayOfWeek   *int   `json:"day_of_week"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
}

// UpsertTemplateResponse confirma el upsert; Deleted=true cuando título y
// descripción vacíos borraron la fila del día.
type UpsertTemplateResponse struct {
	OK      bool `json:"ok"`
	Deleted bool `json:"deleted,omitempty"`
}

// TemplateResponse una plantilla almacenada.
type TemplateResponse struct {
	DayOfWeek   int    `json:"day_of_week"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
}

// TemplateListResponse plantillas del miembro.
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// WorkoutResponse plantilla proyectada sobre una fecha concreta.
type WorkoutResponse struct {
	Fecha       string `json:"fecha"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
}

// WeekResponse rutinas de los próximos 7 días.
type WeekResponse struct {
	Workouts []WorkoutResponse `json:"workouts"`
}

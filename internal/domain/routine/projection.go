// Package routine proyecta las plantillas de rutina semanales sobre fechas
// calendario concretas (servicio de dominio, sin I/O).
package routine

import (
	"time"

	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
)

// Numeración de días fijada al convenio de almacenamiento: 0=domingo .. 6=sábado.
// Coincide con time.Weekday, pero el rango se valida aquí y no se asume.
const (
	MinDayOfWeek = 0
	MaxDayOfWeek = 6
)

// ValidDayOfWeek indica si d está en [0,6].
func ValidDayOfWeek(d int) bool {
	return d >= MinDayOfWeek && d <= MaxDayOfWeek
}

// Workout es una plantilla proyectada sobre una fecha concreta.
type Workout struct {
	Fecha       time.Time
	Titulo      string
	Descripcion string
}

// ProyectarSemana proyecta las plantillas del miembro sobre los próximos 7 días
// a partir de hoy (inclusive). Para cada fecha candidata, si existe plantilla
// para su día de la semana, emite un Workout. El resultado tiene a lo sumo 7
// entradas, en orden ascendente de fecha, saltando los días sin plantilla.
// Función pura de (plantillas, hoy).
func ProyectarSemana(templates []entity.RoutineTemplate, hoy time.Time) []Workout {
	porDia := make(map[int]entity.RoutineTemplate, len(templates))
	for _, t := range templates {
		if ValidDayOfWeek(t.DayOfWeek) {
			porDia[t.DayOfWeek] = t
		}
	}

	workouts := make([]Workout, 0, 7)
	for i := 0; i < 7; i++ {
		fecha := hoy.AddDate(0, 0, i)
		dow := int(fecha.Weekday()) // 0=domingo .. 6=sábado
		t, ok := porDia[dow]
		if !ok {
			continue
		}
		workouts = append(workouts, Workout{
			Fecha:       fecha,
			Titulo:      t.Titulo,
			Descripcion: t.Descripcion,
		})
	}
	return workouts
}

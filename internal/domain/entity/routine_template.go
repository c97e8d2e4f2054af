package entity

// RoutineTemplate plantilla de rutina recurrente por día de la semana.
// A lo sumo una fila por (member, day_of_week); day_of_week va de 0 (domingo)
// a 6 (sábado).
type RoutineTemplate struct {
	ID          string
	MemberID    string
	DayOfWeek   int
	Titulo      string
	Descripcion string
}

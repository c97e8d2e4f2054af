// Package membership implementa la aritmética de fechas del ciclo de vida de
// la membresía (servicio de dominio, sin I/O).
//
// Contrato de renovación:
//
//	base = fecha_vencimiento actual si existe, si no hoy
//	si base < hoy, base = hoy   (una membresía vencida renueva desde hoy,
//	                             no arrastra los días ya vencidos)
//	nuevo_vencimiento = base + días
package membership

import (
	"math"
	"time"

	"github.com/jhoicas/Gimnasio-api/internal/domain"
)

// Planes válidos y su duración en días.
const (
	PlanDia    = "dia"
	PlanSemana = "semana"
	PlanMes    = "mes"
)

var planDias = map[string]int{
	PlanDia:    1,
	PlanSemana: 7,
	PlanMes:    30,
}

// PlanDias devuelve la duración en días del plan (dia=1, semana=7, mes=30).
func PlanDias(plan string) (int, error) {
	dias, ok := planDias[plan]
	if !ok {
		return 0, domain.ErrInvalidPlan
	}
	return dias, nil
}

// ValidPlan indica si el plan es uno de los aceptados.
func ValidPlan(plan string) bool {
	_, ok := planDias[plan]
	return ok
}

// Hoy devuelve la fecha calendario local del servidor, sin componente horario.
func Hoy() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// VencimientoInicial calcula la fecha de vencimiento de una membresía nueva:
// inicio + días del plan.
func VencimientoInicial(inicio time.Time, plan string) (time.Time, error) {
	dias, err := PlanDias(plan)
	if err != nil {
		return time.Time{}, err
	}
	return inicio.AddDate(0, 0, dias), nil
}

// RenovarVencimiento aplica el contrato de renovación sobre el vencimiento
// actual (nil si el miembro no tiene) y devuelve el nuevo vencimiento.
func RenovarVencimiento(actual *time.Time, hoy time.Time, dias int) time.Time {
	base := hoy
	if actual != nil && !actual.IsZero() {
		base = *actual
	}
	if base.Before(hoy) {
		base = hoy
	}
	return base.AddDate(0, 0, dias)
}

// DiasRestantes calcula ceil((vencimiento − hoy) / 1 día). Devuelve nil si el
// miembro no tiene vencimiento asignado. Puede ser negativo (ya venció).
func DiasRestantes(venc *time.Time, hoy time.Time) *int {
	if venc == nil || venc.IsZero() {
		return nil
	}
	d := int(math.Ceil(venc.Sub(hoy).Hours() / 24))
	return &d
}

// Estados de la membresía para clasificación en los dashboards.
const (
	EstadoSinVencimiento = "sin_vencimiento"
	EstadoVencido        = "vencido"
	EstadoUltimoDia      = "ultimo_dia"
	EstadoPorVencer      = "por_vencer"
	EstadoAlDia          = "al_dia"
)

// Estado clasifica los días restantes: negativo = vencido, cero = último día,
// 1 a 5 = por vencer, resto = al día.
func Estado(dias *int) string {
	switch {
	case dias == nil:
		return EstadoSinVencimiento
	case *dias < 0:
		return EstadoVencido
	case *dias == 0:
		return EstadoUltimoDia
	case *dias <= 5:
		return EstadoPorVencer
	default:
		return EstadoAlDia
	}
}

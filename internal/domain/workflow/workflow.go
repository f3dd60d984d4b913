// Package workflow define las máquinas de estados de Audit y Lead.
//
// Las transiciones son fijas (no configurables): cada operación declara sus
// estados origen permitidos y su estado destino. La verificación del guard y la
// escritura del nuevo estado se hacen en una sola sentencia condicional en el
// repositorio; este paquete solo aporta las tablas y su semántica.
package workflow

import "strings"

// Transition describe una operación de workflow: estados origen permitidos y
// estado destino. No salta estados: toda operación exige estar exactamente en
// uno de los From.
type Transition struct {
	Name string   // nombre de la operación (submit_for_review, approve, ...)
	From []string // estados origen válidos
	To   string   // estado resultante
}

// AllowsFrom indica si la transición puede aplicarse desde el estado dado.
func (t Transition) AllowsFrom(status string) bool {
	for _, s := range t.From {
		if s == status {
			return true
		}
	}
	return false
}

// RequiredFrom devuelve los estados origen requeridos como texto para mensajes
// de error, ej: "'draft'" o "'new' | 'qualified' | 'in_progress'".
func (t Transition) RequiredFrom() string {
	quoted := make([]string, 0, len(t.From))
	for _, s := range t.From {
		quoted = append(quoted, "'"+s+"'")
	}
	return strings.Join(quoted, " | ")
}

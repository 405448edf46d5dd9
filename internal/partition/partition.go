// Package partition define el registro de particiones del almacén de equipos:
// una colección física por estado de ciclo de vida, más los logs terminales.
package partition

import (
	"strings"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

// ID identifica una partición; el valor es el nombre de la tabla.
type ID string

const (
	Available      ID = "disponibles"
	AssignedPC     ID = "asignaciones_pc"
	AssignedLaptop ID = "asignaciones_portatiles"
	AssignedTablet ID = "asignaciones_tablets"
	Damaged        ID = "danados"
	Resigned       ID = "renuncias"
	Maintenance    ID = "mantenimientos"
)

func (p ID) Table() string { return string(p) }

// Live enumera las particiones del estado vivo: un service tag reside en
// a lo sumo una de ellas. Renuncias y mantenimientos son logs append-only
// y quedan fuera del invariante.
var Live = []ID{Available, AssignedPC, AssignedLaptop, AssignedTablet, Damaged}

// All cubre todas las particiones que el historial debe consultar.
var All = []ID{Available, AssignedPC, AssignedLaptop, AssignedTablet, Damaged, Resigned, Maintenance}

// LookupOrder es el orden canónico del buscador por service tag en los
// endpoints de consulta y de adjuntos.
var LookupOrder = []ID{AssignedPC, AssignedLaptop, AssignedTablet, Available, Damaged, Maintenance}

// DamageOrder es el orden canónico de búsqueda del reporte de daño.
// Las fuentes históricas diferían por endpoint; aquí hay un solo orden.
var DamageOrder = []ID{AssignedPC, AssignedLaptop, AssignedTablet, Available, Maintenance}

// Assigned agrupa las particiones de asignación por categoría.
var Assigned = []ID{AssignedPC, AssignedLaptop, AssignedTablet}

func IsAssigned(p ID) bool {
	return p == AssignedPC || p == AssignedLaptop || p == AssignedTablet
}

// HasAssignment indica si la tabla lleva columnas de funcionario.
func HasAssignment(p ID) bool {
	return IsAssigned(p) || p == Resigned
}

// HasObservations indica si la tabla lleva la columna de observaciones.
func HasObservations(p ID) bool {
	return p == Available || p == Damaged || p == Maintenance
}

// ForCategory resuelve la partición de asignación que corresponde a la
// categoría del equipo.
func ForCategory(tipo string) (ID, error) {
	switch strings.ToLower(strings.TrimSpace(tipo)) {
	case "pc", "desktop", "escritorio", "todo en uno":
		return AssignedPC, nil
	case "portatil", "portátil", "laptop":
		return AssignedLaptop, nil
	case "tablet", "tableta":
		return AssignedTablet, nil
	default:
		return "", apperrors.ErrUnsupportedCategory
	}
}

// FromCategorySlug traduce el segmento de ruta /asignaciones/{categoria}.
func FromCategorySlug(slug string) (ID, error) {
	switch strings.ToLower(slug) {
	case "pc":
		return AssignedPC, nil
	case "portatiles":
		return AssignedLaptop, nil
	case "tablets":
		return AssignedTablet, nil
	default:
		return "", apperrors.ErrUnsupportedCategory
	}
}

// EventType mapea la partición de origen al tipo de evento del historial.
func EventType(p ID) entities.EventType {
	switch p {
	case AssignedPC, AssignedLaptop, AssignedTablet:
		return entities.EventAssignment
	case Resigned:
		return entities.EventUnassignment
	case Damaged:
		return entities.EventDamage
	case Maintenance:
		return entities.EventMaintenance
	default:
		return entities.EventAvailable
	}
}

// StatusPrefix arma el prefijo del id sintético de un evento:
// "disponible" para filas de disponibles, la categoría en minúsculas
// para el resto.
func StatusPrefix(p ID, tipo string) string {
	if p == Available {
		return "disponible"
	}
	if t := strings.ToLower(strings.TrimSpace(tipo)); t != "" {
		return t
	}
	return "equipo"
}

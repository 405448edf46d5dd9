package dto

import (
	"github.com/aarondl/null/v8"

	"inventory-system/internal/entities"
	"inventory-system/internal/partition"
)

type CreateAsignacionDTO struct {
	DisponibleID      int64  `json:"disponible_id" validate:"required,gt=0"`
	NombreFuncionario string `json:"nombre_funcionario" validate:"required"`
	Cedula            string `json:"cedula"`
	Correo            string `json:"correo" validate:"omitempty,email"`
	Dependencia       string `json:"dependencia"`
	Jefe              string `json:"jefe"`
	RutaActa          string `json:"ruta_acta"`
	Acta              string `json:"acta"`
}

type ReportDamageDTO struct {
	Observaciones string `json:"observaciones"`
}

type RepairDTO struct {
	RepairNotes string `json:"repair_notes" validate:"required"`
}

// EquipmentDTO es la vista JSON de un registro de equipo. El campo estado
// lleva la partición de origen cuando el llamador la conoce.
type EquipmentDTO struct {
	ID   int64  `json:"id"`
	Tipo string `json:"tipo"`

	MarcaCPU      string `json:"marca_cpu"`
	ReferenciaCPU string `json:"referencia_cpu"`
	ServicioCPU   string `json:"servicio_cpu"`
	PlacaCPU      string `json:"placa_cpu"`

	MarcaMonitor      null.String `json:"marca_monitor"`
	ReferenciaMonitor null.String `json:"referencia_monitor"`
	ServicioMonitor   null.String `json:"servicio_monitor"`
	PlacaMonitor      null.String `json:"placa_monitor"`

	Accesorios entities.Accessories `json:"accesorios"`

	RutaActa  null.String `json:"ruta_acta"`
	ActaFecha string      `json:"acta_fecha"`
	ActaHora  string      `json:"acta_hora"`

	Observaciones null.String `json:"observaciones,omitempty"`

	NombreFuncionario null.String `json:"nombre_funcionario,omitempty"`
	Cedula            null.String `json:"cedula,omitempty"`
	Correo            null.String `json:"correo,omitempty"`
	Dependencia       null.String `json:"dependencia,omitempty"`
	Jefe              null.String `json:"jefe,omitempty"`

	Estado string `json:"estado,omitempty"`
}

func FromEquipment(e entities.Equipment, p partition.ID) EquipmentDTO {
	out := EquipmentDTO{
		ID:                e.ID,
		Tipo:              e.Tipo,
		MarcaCPU:          e.MarcaCPU,
		ReferenciaCPU:     e.ReferenciaCPU,
		ServicioCPU:       e.ServicioCPU,
		PlacaCPU:          e.PlacaCPU,
		MarcaMonitor:      e.MarcaMonitor,
		ReferenciaMonitor: e.ReferenciaMonitor,
		ServicioMonitor:   e.ServicioMonitor,
		PlacaMonitor:      e.PlacaMonitor,
		Accesorios:        e.Accesorios,
		RutaActa:          e.RutaActa,
		ActaFecha:         e.Acta.Fecha(),
		ActaHora:          e.Acta.Hora(),
		Observaciones:     e.Observaciones,
		Estado:            string(p),
	}
	if e.Asignacion != nil {
		out.NombreFuncionario = e.Asignacion.NombreFuncionario
		out.Cedula = e.Asignacion.Cedula
		out.Correo = e.Asignacion.Correo
		out.Dependencia = e.Asignacion.Dependencia
		out.Jefe = e.Asignacion.Jefe
	}
	return out
}

func FromEquipments(rows []entities.Equipment, p partition.ID) []EquipmentDTO {
	out := make([]EquipmentDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromEquipment(row, p))
	}
	return out
}

package entities

// EventType clasifica una fila de partición dentro de la narrativa del equipo.
type EventType string

const (
	EventAssignment   EventType = "assignment"
	EventAvailable    EventType = "available"
	EventUnassignment EventType = "unassignment"
	EventDamage       EventType = "damage"
	EventMaintenance  EventType = "maintenance"
)

// HistoryEmployee es el sub-registro de funcionario embebido en un evento
// cuando la fila de origen lleva campos de asignación.
type HistoryEmployee struct {
	Nombre         string `json:"nombre"`
	Dependencia    string `json:"dependencia,omitempty"`
	Identificacion string `json:"identificacion,omitempty"`
	Correo         string `json:"correo,omitempty"`
}

// HistoryEvent es una fila de partición proyectada a la forma común del
// historial. Fecha y Hora ya vienen normalizadas (YYYY-MM-DD / HH:MM).
type HistoryEvent struct {
	ID          string           `json:"id"`
	Tipo        EventType        `json:"tipo"`
	Titulo      string           `json:"titulo"`
	Descripcion string           `json:"descripcion"`
	Fecha       string           `json:"fecha"`
	Hora        string           `json:"hora"`
	Responsable string           `json:"responsable,omitempty"`
	Funcionario *HistoryEmployee `json:"funcionario,omitempty"`
}

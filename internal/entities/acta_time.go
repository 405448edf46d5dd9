package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Valores centinela cuando el acta no tiene fecha utilizable.
const (
	SinFecha = "Sin fecha"
	SinHora  = "00:00"
)

// Formatos que aparecen en los registros históricos: timestamp nativo,
// cadena ISO o cadena "fecha hora" plana.
var actaLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ActaTime normaliza la marca de tiempo del acta en el borde del almacén:
// el motor de historial nunca ve la representación cruda.
type ActaTime struct {
	Time  time.Time
	Valid bool
}

func NewActa(t time.Time) ActaTime {
	return ActaTime{Time: t, Valid: true}
}

// ParseActa interpreta la cadena recibida del cliente; si no coincide con
// ningún formato conocido el acta queda sin fecha.
func ParseActa(s string) ActaTime {
	var a ActaTime
	if s == "" {
		return a
	}
	_ = a.parse(s)
	return a
}

func (a *ActaTime) Scan(src interface{}) error {
	a.Time, a.Valid = time.Time{}, false

	switch v := src.(type) {
	case nil:
		return nil
	case time.Time:
		a.Time, a.Valid = v, true
		return nil
	case string:
		return a.parse(v)
	case []byte:
		return a.parse(string(v))
	default:
		return fmt.Errorf("acta: tipo no soportado %T", src)
	}
}

func (a *ActaTime) parse(s string) error {
	for _, layout := range actaLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			a.Time, a.Valid = t, true
			return nil
		}
	}
	// Una cadena ilegible se trata como ausencia de fecha, no como error.
	return nil
}

func (a ActaTime) Value() (driver.Value, error) {
	if !a.Valid {
		return nil, nil
	}
	return a.Time, nil
}

// Fecha devuelve la fecha normalizada YYYY-MM-DD, o el centinela.
func (a ActaTime) Fecha() string {
	if !a.Valid {
		return SinFecha
	}
	return a.Time.Format("2006-01-02")
}

// Hora devuelve la hora normalizada HH:MM, o el centinela.
func (a ActaTime) Hora() string {
	if !a.Valid {
		return SinHora
	}
	return a.Time.Format("15:04")
}

func (a ActaTime) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.Time.Format(time.RFC3339))
}

func (a *ActaTime) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		a.Time, a.Valid = time.Time{}, false
		return nil
	}
	return a.parse(*s)
}

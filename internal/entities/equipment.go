package entities

import (
	"github.com/aarondl/null/v8"
)

// Accessories es el mapa de presencia de accesorios que viaja con el equipo
// a través de todas las particiones.
type Accessories struct {
	Mouse                bool `json:"mouse"`
	Teclado              bool `json:"teclado"`
	Cargador             bool `json:"cargador"`
	CableRed             bool `json:"cable_red"`
	CablePoder           bool `json:"cable_poder"`
	AdaptadorPantalla    bool `json:"adaptador_pantalla"`
	AdaptadorRed         bool `json:"adaptador_red"`
	AdaptadorMultipuerto bool `json:"adaptador_multipuerto"`
	AntenaWifi           bool `json:"antena_wifi"`
	BaseAdicional        bool `json:"base_adicional"`
	CablePoderAdicional  bool `json:"cable_poder_adicional"`
	GuayaAdicional       bool `json:"guaya_adicional"`
	PantallaAdicional    bool `json:"pantalla_adicional"`
}

// AssignmentInfo existe solo mientras el registro reside en una partición
// de asignaciones (o en el log de renuncias).
type AssignmentInfo struct {
	NombreFuncionario null.String `json:"nombre_funcionario"`
	Cedula            null.String `json:"cedula"`
	Correo            null.String `json:"correo"`
	Dependencia       null.String `json:"dependencia"`
	Jefe              null.String `json:"jefe"`
}

// Equipment es la unidad de inventario. La identidad de negocio es
// ServicioCPU (service tag); el ID de fila cambia en cada movimiento
// entre particiones, el service tag no.
type Equipment struct {
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

	Accesorios Accessories `json:"accesorios"`

	HojaVida null.Bytes  `json:"-"`
	RutaActa null.String `json:"ruta_acta"`
	Acta     ActaTime    `json:"acta"`

	Observaciones null.String `json:"observaciones,omitempty"`

	Asignacion *AssignmentInfo `json:"asignacion,omitempty"`
}

// Clone devuelve una copia profunda; los movimientos re-proyectan la copia,
// nunca el registro de origen.
func (e Equipment) Clone() Equipment {
	out := e
	if e.Asignacion != nil {
		asg := *e.Asignacion
		out.Asignacion = &asg
	}
	if e.HojaVida.Valid {
		data := make([]byte, len(e.HojaVida.Bytes))
		copy(data, e.HojaVida.Bytes)
		out.HojaVida = null.BytesFrom(data)
	}
	return out
}

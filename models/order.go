package models

import (
	"strings"
	"time"
)

// Estados que cuentan como "entregado" para mostrador y cocina.
// Cualquier otro estado (nuevo, en_preparacion, listo, ...) es pendiente.
var deliveredStates = map[string]bool{
	"despachado": true,
	"entregado":  true,
	"retirado":   true,
}

// Formatos de hora_creacion que puede mandar la API.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

type Order struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ClienteNombre string `gorm:"type:varchar(120);not null" json:"cliente_nombre"`
	Telefono      string `gorm:"type:varchar(30)" json:"telefono,omitempty"`
	// retiro | despacho
	Modalidad    string `gorm:"type:varchar(20);not null;default:'retiro'" json:"modalidad"`
	Direccion    string `gorm:"type:varchar(200)" json:"direccion,omitempty"`
	Comuna       string `gorm:"type:varchar(80)" json:"comuna,omitempty"`
	Detalle      string `gorm:"type:text" json:"detalle"`
	PalitosPares int    `gorm:"not null;default:0" json:"palitos_pares"`
	// "normal:2;dulce:1"
	Salsas        string `gorm:"type:varchar(120)" json:"salsas"`
	Observaciones string `gorm:"type:text" json:"observaciones,omitempty"`
	MontoTotalCLP int    `gorm:"not null;default:0" json:"monto_total_clp"`
	// efectivo | transferencia | tarjeta
	MedioPago string `gorm:"type:varchar(30)" json:"medio_pago"`
	Pagado    bool   `gorm:"not null;default:false" json:"pagado"`
	Estado    string `gorm:"type:varchar(30);not null;default:'nuevo'" json:"estado"`
	// Se guarda como texto para tolerar lo que venga de la API;
	// si no parsea, el pedido simplemente no se marca atrasado.
	HoraCreacion string `gorm:"type:varchar(40)" json:"hora_creacion"`
}

// IsDelivered es el unico lugar donde se decide "entregado vs pendiente".
// Depende solo de Estado; pagado es un eje aparte.
func (o Order) IsDelivered() bool {
	return deliveredStates[strings.ToLower(strings.TrimSpace(o.Estado))]
}

// CreatedAt parsea hora_creacion. ok=false cuando el timestamp no sirve.
func (o Order) CreatedAt() (time.Time, bool) {
	s := strings.TrimSpace(o.HoraCreacion)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsLate indica si el pedido lleva mas de threshold esperando.
// Timestamp invalido => false, nunca panic.
func (o Order) IsLate(now time.Time, threshold time.Duration) bool {
	created, ok := o.CreatedAt()
	if !ok {
		return false
	}
	return now.Sub(created) >= threshold
}

package models

// Promo es un combo predefinido que se usa para autocompletar
// detalle y monto al crear o editar un pedido.
type Promo struct {
	PromoNro int    `gorm:"primaryKey;column:promo_nro" json:"promo_nro"`
	Detalle  string `gorm:"type:text;not null" json:"detalle"`
	Monto    int    `gorm:"not null;default:0" json:"monto"`
}

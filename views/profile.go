package views

// FilterMode selecciona que pedidos se muestran.
type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterPending   FilterMode = "pending"
	FilterDelivered FilterMode = "delivered"
)

// Profile describe una vista del tablero: cada pantalla es
// configuracion, no codigo duplicado.
type Profile struct {
	Name          string
	DefaultFilter FilterMode
	// AllowActions habilita los botones de pago/entrega y el link de editar.
	AllowActions bool
	// ShowLateBadge marca en rojo la hora cuando el pedido lleva mucho esperando.
	ShowLateBadge bool
	// AllowFilter habilita el selector de estado (solo mostrador).
	AllowFilter bool
}

// CounterProfile: la tabla del mostrador. Todas las acciones, filtro
// seleccionable, sin marca de atraso.
var CounterProfile = Profile{
	Name:          "mostrador",
	DefaultFilter: FilterPending,
	AllowActions:  true,
	ShowLateBadge: false,
	AllowFilter:   true,
}

// KitchenProfile: la pantalla de cocina. Solo pendientes, sin acciones,
// con marca de atraso.
var KitchenProfile = Profile{
	Name:          "cocina",
	DefaultFilter: FilterPending,
	AllowActions:  false,
	ShowLateBadge: true,
	AllowFilter:   false,
}

// ParseFilter normaliza el parametro de la URL. Valores raros caen
// al filtro por defecto del perfil.
func (p Profile) ParseFilter(raw string) FilterMode {
	switch FilterMode(raw) {
	case FilterAll, FilterPending, FilterDelivered:
		if !p.AllowFilter {
			return p.DefaultFilter
		}
		return FilterMode(raw)
	default:
		return p.DefaultFilter
	}
}

package dto

// Paginación de listados: el API nunca devuelve colecciones sin acotar.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest parámetros de paginación recibidos por query string.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage normaliza valores fuera de rango: limit ausente o negativo toma
// el default, por encima del máximo se recorta, offset negativo se anula.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse eco de la página aplicada, para que el cliente sepa qué
// normalización se hizo sobre sus parámetros.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo uniforme de error: un código estable para programar
// contra él y un mensaje legible. Los errores internos usan siempre un mensaje
// fijo; el detalle queda en el log del servidor.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

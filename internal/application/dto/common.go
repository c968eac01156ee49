package dto

// PageRequest ?limit=&offset= de los listados paginados por offset.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Clamp lleva Limit al rango 1..maxLimit (def si viene vacío o negativo) y Offset a >= 0.
func (p *PageRequest) Clamp(def, maxLimit int) {
	switch {
	case p.Limit <= 0:
		p.Limit = def
	case p.Limit > maxLimit:
		p.Limit = maxLimit
	}
	p.Offset = max(p.Offset, 0)
}

// Response página efectivamente aplicada.
func (p PageRequest) Response() PageResponse {
	return PageResponse{Limit: p.Limit, Offset: p.Offset}
}

type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error: {"code": "...", "message": "..."}. Retryable indica que el mismo
// lote puede volver a intentarse tras releer el movimiento o el stock (409 y 422).
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

package dto

// ErrorResponse cuerpo de error HTTP. Field identifica el parámetro inválido cuando aplica.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

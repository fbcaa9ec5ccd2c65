package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// Mensajes compartidos por todos los recursos.
const (
	MessageNotJSON          = "Error: Data must be json"
	MessageInvalidID        = "Error: id must be a positive integer."
	MessageUnexpected       = "Error: unexpected error."
	MessageRouteNotFound    = "Error: resource not found."
	MessageMethodNotAllowed = "Error: method not allowed."
)

// maxBodyBytes limita el cuerpo de los requests mutantes.
const maxBodyBytes = 1 << 20

var (
	ErrorInvalidContentType = errors.New("content type must be application/json")
	ErrorInvalidJSON        = errors.New("body must be a JSON object")
	ErrorInvalidID          = errors.New("id must be a positive integer")
)

// RequireJSON valida que el request declare application/json (se aceptan parámetros como charset).
func RequireJSON(request *http.Request) error {
	mediaType, _, err := mime.ParseMediaType(request.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return ErrorInvalidContentType
	}
	return nil
}

// DecodeObject decodifica el cuerpo en dst exigiendo un único objeto JSON.
// Campos desconocidos se ignoran; tipos incorrectos y basura al final son error.
func DecodeObject(request *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(request.Body, maxBodyBytes))
	if err != nil {
		return ErrorInvalidJSON
	}

	// json.Valid exige exactamente un valor: rechaza `{"a":1}}` o `{"a":1} x`.
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return ErrorInvalidJSON
	}

	if err := json.Unmarshal(trimmed, dst); err != nil {
		return ErrorInvalidJSON
	}
	return nil
}

// ParseID convierte un parámetro de ruta en un id entero positivo.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrorInvalidID
	}
	return uint(id), nil
}

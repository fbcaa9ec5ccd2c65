package httpx

import (
	"encoding/json"
	"net/http"
)

// Los cuerpos son valores JSON "desnudos": un string de confirmación, un objeto o un array.
// Los errores también viajan como un string JSON con el mensaje para humanos.

// JSON escribe v como JSON con headers correctos.
// Nota: en caso de error de encodeo, responde 500 de forma segura.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		// Último recurso: no se pudo serializar JSON.
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`"Error: unexpected error."` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// OK devuelve una respuesta exitosa.
func OK(w http.ResponseWriter, status int, data any) {
	JSON(w, status, data)
}

// Fail devuelve el mensaje de error como string JSON.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, message)
}

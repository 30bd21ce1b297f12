package handlers

import "fmt"

// Nombre que el servidor anuncia en el header Server.
const ServerName = "Miku Server"

// Respuestas fijas de error, construidas una sola vez al arrancar y
// reutilizadas tal cual en cada ocurrencia.
var (
	Response404 = buildFixedResponse("404 Not Found", "Not Found")
	Response405 = buildFixedResponse("405 Method Not Allowed", "Method Not Allowed")
	Response414 = buildFixedResponse("414 URI Too Long", "URI Too Long")
	Response500 = buildFixedResponse("500 Internal Server Error", "Internal Server Error")
)

// BuildResponse arma la respuesta completa para un destino ya clasificado.
// Todo lo que no sea un directorio o un archivo regular se responde con el
// 404 fijo.
func BuildResponse(target Target) []byte {
	switch target.Kind {
	case TargetDirectory:
		return BuildDirResponse(target.Path)
	case TargetFile:
		return BuildFileResponse(target.Path)
	default:
		return Response404
	}
}

// buildSuccessResponse arma una respuesta 200 completa: línea de estado,
// headers y body, con el Content-Length exacto.
func buildSuccessResponse(contentType string, body []byte) []byte {
	header := fmt.Sprintf(
		"HTTP/1.1 200 OK\r\nServer: %s\r\nConnection: close\r\nContent-Type: %s\r\nContent-Length: %d\r\n\r\n",
		ServerName, contentType, len(body))

	response := make([]byte, 0, len(header)+len(body))
	response = append(response, header...)
	response = append(response, body...)
	return response
}

func buildFixedResponse(status, message string) []byte {
	body := "<html>" + message + "</html>"
	return []byte(fmt.Sprintf(
		"HTTP/1.1 %s\r\nServer: %s\r\nConnection: close\r\nContent-Type: text/html\r\nContent-Length: %d\r\n\r\n%s",
		status, ServerName, len(body), body))
}

// responses_test.go
package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// TestRespuestasFijas prueba que las cuatro respuestas de error tengan la
// línea de estado, los headers y el Content-Length correctos
func TestRespuestasFijas(t *testing.T) {
	tests := []struct {
		name           string
		response       []byte
		expectedStatus string
		expectedBody   string
	}{
		{"404", Response404, "HTTP/1.1 404 Not Found", "<html>Not Found</html>"},
		{"405", Response405, "HTTP/1.1 405 Method Not Allowed", "<html>Method Not Allowed</html>"},
		{"414", Response414, "HTTP/1.1 414 URI Too Long", "<html>URI Too Long</html>"},
		{"500", Response500, "HTTP/1.1 500 Internal Server Error", "<html>Internal Server Error</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, headers, body := splitResponse(tt.response)

			if status != tt.expectedStatus {
				t.Errorf("Esperado status '%s', obtenido '%s'", tt.expectedStatus, status)
			}
			if headers["Server"] != ServerName {
				t.Errorf("Esperado header Server '%s', obtenido '%s'", ServerName, headers["Server"])
			}
			if headers["Connection"] != "close" {
				t.Errorf("Esperado header Connection 'close', obtenido '%s'", headers["Connection"])
			}
			if headers["Content-Type"] != "text/html" {
				t.Errorf("Esperado Content-Type 'text/html', obtenido '%s'", headers["Content-Type"])
			}
			if headers["Content-Length"] != strconv.Itoa(len(tt.expectedBody)) {
				t.Errorf("Esperado Content-Length '%d', obtenido '%s'", len(tt.expectedBody), headers["Content-Length"])
			}
			if string(body) != tt.expectedBody {
				t.Errorf("Esperado body '%s', obtenido '%s'", tt.expectedBody, string(body))
			}
		})
	}
}

// TestRespuestasFijas_SonEstables verifica que cada ocurrencia entregue
// exactamente los mismos bytes
func TestRespuestasFijas_SonEstables(t *testing.T) {
	antes := make([]byte, len(Response404))
	copy(antes, Response404)

	// Resolver y responder cualquier cosa no debe tocar las respuestas fijas.
	BuildResponse(Target{Kind: TargetNotFound})
	BuildFileResponse("no_existe_para_nada.txt")

	if !bytes.Equal(antes, Response404) {
		t.Errorf("La respuesta 404 fija cambió entre usos")
	}
}

// TestBuildResponse_Despacho prueba que cada clase de destino produzca la
// respuesta que le corresponde
func TestBuildResponse_Despacho(t *testing.T) {
	dir := "testresp_despacho"
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		t.Fatalf("No se pudo crear el directorio de prueba: %v", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "x.txt")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatalf("No se pudo crear el archivo de prueba: %v", err)
	}

	// Destino no encontrado: el 404 fijo, byte a byte.
	response := BuildResponse(Target{Kind: TargetNotFound, Path: "lo_que_sea"})
	if !bytes.Equal(response, Response404) {
		t.Errorf("Esperada la respuesta 404 fija para TargetNotFound")
	}

	// Archivo: 200 con el contenido.
	status, headers, body := splitResponse(BuildResponse(Target{Kind: TargetFile, Path: path}))
	if status != "HTTP/1.1 200 OK" {
		t.Errorf("Esperado status 'HTTP/1.1 200 OK' para un archivo, obtenido '%s'", status)
	}
	if headers["Content-Type"] != "text/plain" {
		t.Errorf("Esperado Content-Type 'text/plain', obtenido '%s'", headers["Content-Type"])
	}
	if string(body) != "abc" {
		t.Errorf("Esperado body 'abc', obtenido %q", string(body))
	}

	// Directorio: 200 con el listado.
	status, headers, _ = splitResponse(BuildResponse(Target{Kind: TargetDirectory, Path: dir}))
	if status != "HTTP/1.1 200 OK" {
		t.Errorf("Esperado status 'HTTP/1.1 200 OK' para un directorio, obtenido '%s'", status)
	}
	if headers["Content-Type"] != "text/html; charset=utf-8" {
		t.Errorf("Esperado Content-Type 'text/html; charset=utf-8', obtenido '%s'", headers["Content-Type"])
	}
}

package handlers

import (
	"io"
	"os"
)

// BuildFileResponse lee el archivo completo en memoria y arma la respuesta
// 200 con su tipo de contenido y su largo exacto. Si el archivo no se puede
// abrir (lo borraron entre la clasificación y el open, o no hay permisos)
// se responde con el 404 fijo; si falla la lectura, con el 500 fijo.
func BuildFileResponse(path string) []byte {
	file, err := os.Open(path)
	if err != nil {
		return Response404
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return Response500
	}

	return buildSuccessResponse(ContentTypeFor(path), content)
}

package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"servidor-archivos/utils"
)

// BuildDirResponse arma el listado HTML de un directorio: un enlace por
// hijo, los subdirectorios con "/" al final y los archivos con su tamaño
// legible. Las entradas que no se pueden inspeccionar se omiten en vez de
// hacer fallar el listado entero.
func BuildDirResponse(path string) []byte {
	entries, err := os.ReadDir(path)
	if err != nil {
		return Response404
	}

	var body strings.Builder
	body.WriteString("<html><header><h1>" + ServerName + "</h1></header><body>")
	body.WriteString("Current dir: " + path + "<br><br>")

	for _, entry := range entries {
		name := entry.Name()

		info, err := os.Stat(filepath.Join(path, name))
		if err != nil {
			continue
		}

		if info.IsDir() {
			body.WriteString("<a href='" + name + "/'>" + name + "/</a><br>")
		} else {
			body.WriteString("<a href='" + name + "'>" + name + "</a>   " + utils.FormatFileSize(info.Size()) + " <br>")
		}
	}

	body.WriteString("</body></html>")

	return buildSuccessResponse("text/html; charset=utf-8", []byte(body.String()))
}

package handlers

import (
	"path/filepath"
	"strings"
)

// Tabla fija de tipos MIME por extensión (en minúscula, con el punto).
// Se inicializa al arrancar y nunca se modifica.
var MimeTable = map[string]string{
	".css":  "text/css",
	".gif":  "image/gif",
	".htm":  "text/html",
	".html": "text/html",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".ico":  "image/x-icon",
	".js":   "application/javascript",
	".mp4":  "video/mp4",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".xml":  "text/xml",
}

// ContentTypeFor busca el tipo de contenido según la extensión del archivo.
// Si la extensión no está en la tabla se usa text/plain.
func ContentTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if contentType, ok := MimeTable[ext]; ok {
		return contentType
	}
	return "text/plain"
}

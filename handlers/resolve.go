package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"servidor-archivos/utils"
)

// TargetKind clasifica el resultado de resolver un URI contra la raíz.
type TargetKind int

const (
	TargetNotFound TargetKind = iota
	TargetFile
	TargetDirectory
)

// Target es el destino resuelto de una solicitud.
type Target struct {
	Decoded string     // URI ya decodificado
	Path    string     // ubicación absoluta bajo la raíz
	Kind    TargetKind // clasificación del destino
}

// Resolve decodifica el URI crudo, lo une a la raíz configurada y clasifica
// el resultado consultando el filesystem. Un destino que escapa de la raíz
// (por segmentos "..") se clasifica como no encontrado en vez de servirse.
func Resolve(root, rawURI string) Target {
	decoded := utils.DecodeURI(rawURI)
	root = filepath.Clean(root)

	path := root
	if decoded != "/" {
		path = filepath.Join(root, decoded)
	}

	target := Target{Decoded: decoded, Path: path, Kind: TargetNotFound}

	if !underRoot(root, path) {
		return target
	}

	info, err := os.Stat(path)
	switch {
	case err != nil:
		// Ausente, symlink roto, sin permisos: todo cuenta como no encontrado.
		target.Kind = TargetNotFound
	case info.IsDir():
		target.Kind = TargetDirectory
	case info.Mode().IsRegular():
		target.Kind = TargetFile
	default:
		target.Kind = TargetNotFound
	}

	return target
}

// underRoot verifica que path siga estando bajo root después del join.
// Ambos llegan ya limpiados.
func underRoot(root, path string) bool {
	sep := string(filepath.Separator)

	// Una raíz ya terminada en separador es la raíz del filesystem, que
	// contiene cualquier ruta limpia.
	if strings.HasSuffix(root, sep) {
		return strings.HasPrefix(path, root)
	}

	return path == root || strings.HasPrefix(path, root+sep)
}

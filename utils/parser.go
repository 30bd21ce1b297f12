package utils

import (
	"errors"
	"strings"
)

// Largo máximo permitido para el URI crudo (antes de decodificar).
const MaxURILen = 1024

// Errores de parseo de la línea de solicitud. El manejador de conexiones
// los traduce a la respuesta fija que corresponde.
var (
	ErrMalformedRequest  = errors.New("solicitud malformada")
	ErrUnsupportedMethod = errors.New("método no soportado")
	ErrURITooLong        = errors.New("uri demasiado largo")
)

// ParseRequestLine extrae el método y el URI crudo de los bytes leídos de
// una conexión. Solo inspecciona la primera línea; los headers y el body
// nunca se parsean.
func ParseRequestLine(req []byte) (method, uri string, err error) {
	s := string(req)

	// Sin el terminador de headers no es una solicitud HTTP completa.
	if !strings.Contains(s, "\r\n\r\n") {
		return "", "", ErrMalformedRequest
	}

	line := s
	if i := strings.Index(s, "\r\n"); i >= 0 {
		line = s[:i]
	}

	// RFC 2616: METODO SP URI SP VERSION
	sp1 := strings.Index(line, " ")
	if sp1 < 0 {
		return "", "", ErrMalformedRequest
	}

	method = line[:sp1]
	if strings.ToUpper(method) != "GET" {
		return method, "", ErrUnsupportedMethod
	}

	rest := line[sp1+1:]
	sp2 := strings.Index(rest, " ")
	if sp2 < 0 {
		return method, "", ErrMalformedRequest
	}

	uri = rest[:sp2]
	if len(uri) > MaxURILen {
		return method, uri, ErrURITooLong
	}

	return method, uri, nil
}

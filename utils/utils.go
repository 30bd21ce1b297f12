package utils

import (
	"strconv"
	"strings"
)

// DecodeURI decodifica el percent-encoding de un URI (RFC 3986): un '%'
// seguido de dos dígitos hexadecimales se convierte en el byte que
// representan. Cualquier otro byte pasa sin cambios, incluido un '%'
// suelto: es un decodificador permisivo, no un validador.
func DecodeURI(uri string) string {
	var decoded strings.Builder
	decoded.Grow(len(uri))

	for i := 0; i < len(uri); {
		if uri[i] == '%' && i+2 < len(uri) && isHexDigit(uri[i+1]) && isHexDigit(uri[i+2]) {
			decoded.WriteByte(hexValue(uri[i+1])<<4 | hexValue(uri[i+2]))
			i += 3
		} else {
			decoded.WriteByte(uri[i])
			i++
		}
	}

	return decoded.String()
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}

// FormatFileSize formatea un tamaño en bytes de forma legible, truncando
// a la unidad más chica cuyo valor sea >= 1.
func FormatFileSize(size int64) string {
	switch {
	case size < 1024:
		return strconv.FormatInt(size, 10) + " Bytes"
	case size < 1024*1024:
		return strconv.FormatInt(size/1024, 10) + " KB"
	case size < 1024*1024*1024:
		return strconv.FormatInt(size/1024/1024, 10) + " MB"
	default:
		return strconv.FormatInt(size/1024/1024/1024, 10) + " GB"
	}
}

package handlers

import "strings"

// Ayudantes compartidos por las pruebas del paquete.

// splitResponse separa una respuesta completa en línea de estado, headers y
// body, para poder hacer aserciones sobre cada parte.
func splitResponse(response []byte) (status string, headers map[string]string, body []byte) {
	s := string(response)

	sep := strings.Index(s, "\r\n\r\n")
	if sep < 0 {
		return "", nil, nil
	}

	body = response[sep+4:]
	lines := strings.Split(s[:sep], "\r\n")
	status = lines[0]

	headers = make(map[string]string)
	for _, line := range lines[1:] {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) == 2 {
			headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}

	return status, headers, body
}

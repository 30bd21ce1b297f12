// main_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParsePort prueba la validación del argumento de puerto
func TestParsePort(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		expected int
		wantErr  bool
	}{
		{"valido", "8080", 8080, false},
		{"minimo", "1", 1, false},
		{"maximo", "65535", 65535, false},
		{"cero", "0", 0, true},
		{"negativo", "-80", 0, true},
		{"fuera de rango", "65536", 0, true},
		{"no numerico", "ochenta", 0, true},
		{"vacio", "", 0, true},
		{"con sufijo", "8080x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port, err := parsePort(tt.arg)

			if tt.wantErr {
				assert.Error(t, err, "Esperado un error para %q", tt.arg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, port, "Puerto inesperado")
			}
		})
	}
}

// TestResolveRoot prueba la validación del directorio raíz
func TestResolveRoot(t *testing.T) {
	dir := "testmain_raiz"
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		t.Fatalf("No se pudo crear el directorio de prueba: %v", err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "archivo.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("No se pudo crear el archivo de prueba: %v", err)
	}

	// Directorio existente: se acepta y se vuelve absoluto.
	root, err := resolveRoot(dir)
	assert.NoError(t, err)
	assert.True(t, filepath.IsAbs(root), "La raíz debía quedar absoluta, obtenido %q", root)

	// Un archivo no sirve como raíz.
	_, err = resolveRoot(file)
	assert.Error(t, err, "Esperado un error para una raíz que es archivo")

	// Un directorio inexistente tampoco.
	_, err = resolveRoot("testmain_no_existe")
	assert.Error(t, err, "Esperado un error para una raíz inexistente")
}

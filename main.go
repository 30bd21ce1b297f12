package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strconv"
)

// parsePort valida el argumento de puerto: un entero dentro del rango TCP
// utilizable.
func parsePort(arg string) (int, error) {
	port, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("el puerto %q no es un número", arg)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("el puerto %d está fuera del rango 1-65535", port)
	}
	return port, nil
}

// resolveRoot valida el directorio raíz a servir y lo vuelve absoluto, para
// que las rutas resueltas no dependan del directorio de trabajo.
func resolveRoot(arg string) (string, error) {
	root, err := filepath.Abs(arg)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("no se puede acceder a la raíz %q: %v", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("la raíz %q no es un directorio", root)
	}
	return root, nil
}

func main() {
	bind := flag.String("b", "0.0.0.0", "Dirección IPv4 donde escuchar")
	workers := flag.Int("w", 0, "Cantidad de workers (0 = núcleos disponibles)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Uso: %s [opciones] <puerto> <raiz>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	port, err := parsePort(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error en los argumentos: %v", err)
	}

	root, err := resolveRoot(flag.Arg(1))
	if err != nil {
		log.Fatalf("Error en los argumentos: %v", err)
	}

	ip := net.ParseIP(*bind)
	if ip == nil || ip.To4() == nil {
		log.Fatalf("Error en los argumentos: %q no es una dirección IPv4", *bind)
	}

	pool := NewWorkerPool(*workers)
	server := NewServer(net.JoinHostPort(*bind, strconv.Itoa(port)), root, pool)

	log.Printf("Sirviendo %s", root)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Error del servidor: %v", err)
	}
}

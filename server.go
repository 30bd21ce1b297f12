package main

import (
	"errors"
	"log"
	"net"
)

// Server acepta conexiones TCP y las reparte al pool. El accept loop no
// atiende a nadie: su único trabajo es aceptar y encolar, para volver a
// aceptar lo antes posible.
type Server struct {
	Addr string
	Root string
	Pool *WorkerPool
}

func NewServer(addr string, root string, pool *WorkerPool) *Server {
	return &Server{
		Addr: addr,
		Root: root,
		Pool: pool,
	}
}

// ListenAndServe abre el socket de escucha y entra al accept loop. Solo
// vuelve si no se pudo escuchar o si el listener se cierra por fuera.
func (s *Server) ListenAndServe() error {
	listener, err := net.Listen("tcp4", s.Addr)
	if err != nil {
		return err
	}

	log.Printf("Servidor escuchando en %s", s.Addr)
	return s.Serve(listener)
}

// Serve acepta conexiones por siempre. Un error de accept sobre un listener
// vivo se registra y se sigue aceptando; solo el cierre del listener
// termina el bucle.
func (s *Server) Serve(listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.Printf("Error aceptando conexión: %v", err)
			continue
		}

		connection := NewConnection(conn, s.Root)
		s.Pool.Submit(connection.Handle)
	}
}

package main

import (
	"errors"
	"io"
	"log"
	"net"
	"time"

	"servidor-archivos/handlers"
	"servidor-archivos/utils"
)

const (
	// RecvBufferLen es el tamaño de la única lectura por conexión. Todo lo
	// que el cliente quiera decir tiene que caber en esa lectura.
	RecvBufferLen = 8192

	// RecvTimeout es el plazo máximo para esa lectura.
	RecvTimeout = 5 * time.Second
)

// Connection atiende una conexión aceptada de principio a fin: una lectura,
// una respuesta, cierre. Cada instancia vive dentro de una sola tarea del
// pool, así que no necesita sincronización propia.
type Connection struct {
	conn net.Conn
	root string
}

func NewConnection(conn net.Conn, root string) *Connection {
	return &Connection{
		conn: conn,
		root: root,
	}
}

// Handle ejecuta el ciclo completo de la conexión. Nunca entrega errores ni
// pánicos hacia el pool: todo termina aquí, en una respuesta al cliente o
// en una línea de log.
func (c *Connection) Handle() {
	defer c.close()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Pánico atendiendo la conexión: %v", r)
			c.respond(handlers.Response500)
		}
	}()

	if err := c.conn.SetReadDeadline(time.Now().Add(RecvTimeout)); err != nil {
		log.Printf("Error fijando el plazo de lectura: %v", err)
		return
	}

	buffer := make([]byte, RecvBufferLen)
	n, err := c.conn.Read(buffer)
	if n <= 0 {
		if err == nil || errors.Is(err, io.EOF) {
			log.Printf("El cliente cerró la conexión sin enviar datos")
		} else {
			log.Printf("Error leyendo de la conexión: %v", err)
		}
		return
	}

	method, uri, err := utils.ParseRequestLine(buffer[:n])
	if err != nil {
		c.respond(responseForParseError(err))
		return
	}

	target := handlers.Resolve(c.root, uri)
	log.Printf("%s %s -> %s", method, uri, target.Path)

	c.respond(handlers.BuildResponse(target))
}

// respond escribe la respuesta completa en una sola llamada. Un fallo de
// escritura ya no tiene remedio: solo se registra.
func (c *Connection) respond(response []byte) {
	if _, err := c.conn.Write(response); err != nil {
		log.Printf("Error escribiendo la respuesta: %v", err)
	}
}

// close apaga el lado de escritura primero, para que el cliente vea un EOF
// limpio después de la respuesta, y luego cierra la conexión.
func (c *Connection) close() {
	type closeWriter interface {
		CloseWrite() error
	}

	if cw, ok := c.conn.(closeWriter); ok {
		if err := cw.CloseWrite(); err != nil {
			log.Printf("Error cerrando el lado de escritura: %v", err)
		}
	}

	if err := c.conn.Close(); err != nil {
		log.Printf("Error cerrando la conexión: %v", err)
	}
}

// responseForParseError traduce el error de parseo al estado HTTP que le
// corresponde. Cualquier error no reconocido se trata como petición
// malformada.
func responseForParseError(err error) []byte {
	switch {
	case errors.Is(err, utils.ErrUnsupportedMethod):
		return handlers.Response405
	case errors.Is(err, utils.ErrURITooLong):
		return handlers.Response414
	default:
		return handlers.Response500
	}
}

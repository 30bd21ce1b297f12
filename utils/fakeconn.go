package utils

import (
	"bytes"
	"io"
	"net"
	"time"
)

// FakeConn implementa net.Conn para pruebas: entrega ReadData en una única
// lectura y captura en Written todo lo que se escribe.
type FakeConn struct {
	ReadData    []byte // bytes que entrega la primera lectura
	ReadErr     error  // si no es nil, Read falla con este error
	DeadlineErr error  // si no es nil, SetReadDeadline falla con este error

	Written    bytes.Buffer
	HalfClosed bool // se llamó a CloseWrite
	Closed     bool // se llamó a Close

	readDone bool
}

func (f *FakeConn) Read(b []byte) (n int, err error) {
	if f.ReadErr != nil {
		return 0, f.ReadErr
	}
	if f.readDone || len(f.ReadData) == 0 {
		return 0, io.EOF
	}
	f.readDone = true
	return copy(b, f.ReadData), nil
}

func (f *FakeConn) Write(b []byte) (n int, err error) {
	return f.Written.Write(b)
}

func (f *FakeConn) CloseWrite() error {
	f.HalfClosed = true
	return nil
}

func (f *FakeConn) Close() error {
	f.Closed = true
	return nil
}

// Implementa el resto de los métodos de net.Conn
func (f *FakeConn) LocalAddr() net.Addr                { return nil }
func (f *FakeConn) RemoteAddr() net.Addr               { return nil }
func (f *FakeConn) SetDeadline(t time.Time) error      { return nil }
func (f *FakeConn) SetReadDeadline(t time.Time) error  { return f.DeadlineErr }
func (f *FakeConn) SetWriteDeadline(t time.Time) error { return nil }

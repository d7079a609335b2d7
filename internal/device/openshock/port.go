package openshock

import (
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

// Port is the subset of a serial port the link needs.
type Port interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
	Drain() error
}

// OpenFunc opens the named port at the given baud rate.
type OpenFunc func(name string, baudRate int) (Port, error)

// ListFunc enumerates candidate port names.
type ListFunc func() ([]string, error)

// OpenSerial opens a real serial port.
func OpenSerial(name string, baudRate int) (Port, error) {
	port, err := serial.Open(name, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	return port, nil
}

// ListSerial returns the serial ports present on this machine.
func ListSerial() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}

	return ports, nil
}

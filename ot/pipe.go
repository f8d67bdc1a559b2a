//
// pipe.go
//
// Copyright (c) 2026 kobakaku
//
// All rights reserved.
//

package ot

import (
	"encoding/binary"
	"fmt"
	"io"
)

var bo = binary.BigEndian

var _ IO = &Pipe{}

// maxMessageSize limits the length of a single pipe message. The
// largest protocol payload is a modulus-sized ciphertext, so the
// limit is generous.
const maxMessageSize = 64 * 1024

// Pipe implements the IO interface with an in-memory io.Pipe. It is
// meant for running both parties inside one process.
type Pipe struct {
	r *io.PipeReader
	w *io.PipeWriter
}

// NewPipe creates a connected pair of pipes: data sent to one end is
// received by the other.
func NewPipe() (*Pipe, *Pipe) {
	ar, aw := io.Pipe()
	br, bw := io.Pipe()

	return &Pipe{
			r: ar,
			w: bw,
		}, &Pipe{
			r: br,
			w: aw,
		}
}

// SendData sends binary data.
func (p *Pipe) SendData(val []byte) error {
	if len(val) > maxMessageSize {
		return fmt.Errorf("pipe message too long: %d > %d",
			len(val), maxMessageSize)
	}
	buf := make([]byte, 4+len(val))
	bo.PutUint32(buf, uint32(len(val)))
	copy(buf[4:], val)
	_, err := p.w.Write(buf)
	return err
}

// SendUint32 sends an uint32 value.
func (p *Pipe) SendUint32(val int) error {
	var buf [4]byte
	bo.PutUint32(buf[:], uint32(val))
	_, err := p.w.Write(buf[:])
	return err
}

// Flush flushes any pending data in the connection.
func (p *Pipe) Flush() error {
	return nil
}

// Close closes the sending side of the pipe.
func (p *Pipe) Close() error {
	return p.w.Close()
}

// ReceiveData receives binary data.
func (p *Pipe) ReceiveData() ([]byte, error) {
	var hdr [4]byte
	_, err := io.ReadFull(p.r, hdr[:])
	if err != nil {
		return nil, err
	}
	l := bo.Uint32(hdr[:])
	if l > maxMessageSize {
		return nil, fmt.Errorf("pipe message too long: %d > %d",
			l, maxMessageSize)
	}
	data := make([]byte, l)
	_, err = io.ReadFull(p.r, data)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ReceiveUint32 receives an uint32 value.
func (p *Pipe) ReceiveUint32() (int, error) {
	var buf [4]byte
	_, err := io.ReadFull(p.r, buf[:])
	if err != nil {
		return 0, err
	}
	return int(bo.Uint32(buf[:])), nil
}

package message

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/lerenn/adogh/pkg/logger"
)

// Native messaging size limits, as enforced by Chromium.
const (
	MaxIncomingSize = 64 << 20
	MaxOutgoingSize = 1 << 20
)

// ReadFrame reads one length-prefixed native messaging frame.
// It returns io.EOF when the stream ends cleanly between frames.
func ReadFrame(r io.Reader) ([]byte, error) {
	var size uint32
	if err := binary.Read(r, binary.NativeEndian, &size); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	if size > MaxIncomingSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, size)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	return data, nil
}

// WriteFrame writes data as one length-prefixed native messaging frame.
func WriteFrame(w io.Writer, data []byte) error {
	if len(data) > MaxOutgoingSize {
		return fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(data))
	}
	if err := binary.Write(w, binary.NativeEndian, uint32(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// Handler answers decoded requests.
type Handler interface {
	HandleMessage(ctx context.Context, req Request) (Response, error)
}

// Host serves native messaging requests from a browser extension.
type Host struct {
	handler Handler
	logger  logger.Logger
}

// NewHost creates a Host dispatching to handler.
func NewHost(handler Handler, l logger.Logger) *Host {
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &Host{handler: handler, logger: l}
}

// Serve answers frames from r on w until r is exhausted or ctx is done.
// A failing request yields an error response and the loop goes on.
func (h *Host) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := ReadFrame(r)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := h.reply(w, h.answer(ctx, data)); err != nil {
			return err
		}
	}
}

// reply writes resp, replacing a response over MaxOutgoingSize with a short error.
func (h *Host) reply(w io.Writer, resp Response) error {
	out, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	err = WriteFrame(w, out)
	if !errors.Is(err, ErrMessageTooLarge) {
		return err
	}

	h.logger.Logf("Dropped response: %v", err)
	out, err = json.Marshal(Response{Error: ErrMessageTooLarge.Error()})
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return WriteFrame(w, out)
}

func (h *Host) answer(ctx context.Context, data []byte) Response {
	req, err := Decode(data)
	if err != nil {
		h.logger.Logf("Rejected message: %v", err)
		return Response{Error: err.Error()}
	}

	resp, err := h.handler.HandleMessage(ctx, req)
	if err != nil {
		h.logger.Logf("Action %s failed: %v", req.Action(), err)
		return Response{Error: err.Error()}
	}
	return resp
}

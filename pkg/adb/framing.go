package adb

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Framing constants.
const (
	// LengthPrefixSize is the size of the hex length prefix in bytes.
	LengthPrefixSize = 4

	// MaxMessageSize is the largest length a 4 hex digit prefix can carry.
	MaxMessageSize = 0xffff

	statusOkay = "OKAY"
	statusFail = "FAIL"
)

// Framing errors.
var (
	// ErrMessageTooLarge indicates the message exceeds MaxMessageSize.
	ErrMessageTooLarge = errors.New("message too large")

	// ErrFrameTruncated indicates the server closed the connection mid-frame.
	ErrFrameTruncated = errors.New("frame truncated")

	// ErrInvalidLength indicates a length prefix that is not hexadecimal.
	ErrInvalidLength = errors.New("invalid length prefix")

	// ErrUnexpectedStatus indicates a status other than OKAY or FAIL.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// WriteMessage writes a hex length-prefixed message.
func WriteMessage(w io.Writer, msg string) error {
	if len(msg) > MaxMessageSize {
		return fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, len(msg), MaxMessageSize)
	}
	if _, err := io.WriteString(w, fmt.Sprintf("%04x%s", len(msg), msg)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// ReadMessage reads a hex length-prefixed message.
func ReadMessage(r io.Reader) (string, error) {
	var lengthBuf [LengthPrefixSize]byte
	if err := readFull(r, lengthBuf[:]); err != nil {
		return "", err
	}

	length, err := strconv.ParseUint(string(lengthBuf[:]), 16, 16)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidLength, lengthBuf[:])
	}

	payload := make([]byte, length)
	if err := readFull(r, payload); err != nil {
		return "", err
	}
	return string(payload), nil
}

// ReadStatus reads the 4 byte status. On FAIL the server's message is
// read and returned as an error wrapping ErrRequestFailed.
func ReadStatus(r io.Reader) error {
	var status [4]byte
	if err := readFull(r, status[:]); err != nil {
		return err
	}

	switch string(status[:]) {
	case statusOkay:
		return nil
	case statusFail:
		msg, err := ReadMessage(r)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
		return fmt.Errorf("%w: %s", ErrRequestFailed, msg)
	default:
		return fmt.Errorf("%w: %q", ErrUnexpectedStatus, status[:])
	}
}

func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return ErrFrameTruncated
		}
		return fmt.Errorf("failed to read: %w", err)
	}
	return nil
}

package pairing

import (
	"fmt"
	"strings"
)

// Payload layout pieces.
const (
	payloadPrefix = "WIFI:T:ADB;S:"
	payloadCode   = ";P:"
	payloadSuffix = ";;"
)

// Payload is the content of a pairing QR code.
type Payload struct {
	// Name is the service instance name the device announces when pairing.
	Name string

	// Code is the pair code.
	Code Code
}

// EncodePayload builds the QR payload for name and code.
// The name is not escaped.
func EncodePayload(name string, code Code) (string, error) {
	if err := code.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s%s%s%s", payloadPrefix, name, payloadCode, code.String(), payloadSuffix), nil
}

// String returns the encoded payload. It returns an empty string if the
// code is invalid.
func (p Payload) String() string {
	s, err := EncodePayload(p.Name, p.Code)
	if err != nil {
		return ""
	}
	return s
}

// ParsePayload parses a QR payload produced by EncodePayload.
//
// Since names are not escaped, the last ";P:" separates name and code.
func ParsePayload(s string) (*Payload, error) {
	if !strings.HasPrefix(s, payloadPrefix) || !strings.HasSuffix(s, payloadSuffix) {
		return nil, fmt.Errorf("%w: expected %s<name>%s<code>%s", ErrInvalidPayload, payloadPrefix, payloadCode, payloadSuffix)
	}

	body := strings.TrimSuffix(strings.TrimPrefix(s, payloadPrefix), payloadSuffix)
	i := strings.LastIndex(body, payloadCode)
	if i < 0 {
		return nil, fmt.Errorf("%w: missing pair code", ErrInvalidPayload)
	}

	code, err := ParseCode(body[i+len(payloadCode):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return &Payload{
		Name: body[:i],
		Code: code,
	}, nil
}

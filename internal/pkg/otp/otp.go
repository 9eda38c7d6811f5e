package otp

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

const (
	// DefaultLength is used when NewNumeric receives a non-positive length.
	DefaultLength = 6
	// MaxLength keeps the code readable on a phone screen.
	MaxLength = 10
)

// ErrLengthOutOfRange is returned by NewNumeric for lengths above MaxLength.
var ErrLengthOutOfRange = errors.New("otp: code length out of range")

// Generator produces one-time codes.
type Generator interface {
	Generate() (string, error)
	Length() int
}

// Numeric draws every digit independently and uniformly from 0-9, so the
// code space is 10^length and leading zeros are kept.
type Numeric struct {
	length int
	rand   io.Reader
}

func NewNumeric(length int) (*Numeric, error) {
	if length <= 0 {
		length = DefaultLength
	}
	if length > MaxLength {
		return nil, ErrLengthOutOfRange
	}
	return &Numeric{length: length, rand: rand.Reader}, nil
}

func (n *Numeric) Length() int {
	return n.length
}

func (n *Numeric) Generate() (string, error) {
	ten := big.NewInt(10)
	code := make([]byte, n.length)

	for i := range code {
		d, err := rand.Int(n.rand, ten)
		if err != nil {
			return "", err
		}
		code[i] = byte('0' + d.Int64())
	}

	return string(code), nil
}

package audio

import (
	"encoding/binary"
	"strings"
)

const (
	// SampleRate is the rate the recognizer models are trained on.
	SampleRate = 16000
	// Channels is fixed to mono.
	Channels = 1
	// BlockSize is the number of samples delivered per handler call (0.5s at 16kHz).
	BlockSize = 8000
)

// Config describes the stream to open. Samples are always signed 16-bit.
type Config struct {
	SampleRate int
	Channels   int
	BlockSize  int
}

func DefaultConfig() Config {
	return Config{
		SampleRate: SampleRate,
		Channels:   Channels,
		BlockSize:  BlockSize,
	}
}

// StatusFlags are driver-reported conditions attached to a block.
type StatusFlags uint8

const (
	InputUnderflow StatusFlags = 1 << iota
	InputOverflow
)

func (f StatusFlags) String() string {
	if f == 0 {
		return "ok"
	}

	names := make([]string, 0, 2)
	if f&InputUnderflow != 0 {
		names = append(names, "input underflow")
	}
	if f&InputOverflow != 0 {
		names = append(names, "input overflow")
	}
	if len(names) == 0 {
		return "unknown"
	}
	return strings.Join(names, ", ")
}

// Chunk is one block of audio. Samples is only valid during the handler call.
type Chunk struct {
	Samples []int16
	Status  StatusFlags
}

// Handler receives blocks in arrival order. It must return quickly.
type Handler func(chunk Chunk)

//go:generate moq -rm -out stream_mock.go . Stream
type Stream interface {
	Start() error
	Stop() error
	Close() error
}

//go:generate moq -rm -out opener_mock.go . Opener
type Opener interface {
	Open(cfg Config, handler Handler) (Stream, error)
}

// Finisher is implemented by streams that end on their own, such as file replay.
type Finisher interface {
	Finished() <-chan struct{}
}

// SamplesToBytes appends the little-endian encoding of samples to dst[:0].
func SamplesToBytes(dst []byte, samples []int16) []byte {
	dst = dst[:0]
	for _, s := range samples {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(s))
	}
	return dst
}

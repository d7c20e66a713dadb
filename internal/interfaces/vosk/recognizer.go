package vosk

// VoskRecognizer is the subset of *vosk.VoskRecognizer the adapter drives.
// Result methods return the decoder's JSON documents.
//
//go:generate moq -rm -out recognizer_mock.go . VoskRecognizer
type VoskRecognizer interface {
	AcceptWaveform([]byte) int
	PartialResult() string
	Result() string
	FinalResult() string
}

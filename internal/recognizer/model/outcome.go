package model

// Outcome is the result of feeding one chunk to the recognizer.
// It is either Final or Partial.
type Outcome interface {
	outcome()
}

// Final is a committed transcription; the recognizer detected the end of an utterance.
type Final struct {
	Text string
}

// Partial is the in-progress hypothesis. Text may be empty.
type Partial struct {
	Text string
}

func (Final) outcome()   {}
func (Partial) outcome() {}

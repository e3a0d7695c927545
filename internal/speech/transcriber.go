// Package speech is a stand-in for real speech-to-text. The product demos
// voice input with a simulated transcript; no audio is ever processed.
package speech

import "fmt"

// DefaultSimulatedTranscript is returned when a voice request carries no
// simulated text of its own.
const DefaultSimulatedTranscript = "My internet connection keeps dropping every few minutes and I have already restarted the router twice."

// Transcriber converts an audio reference into text. The current
// implementation only simulates transcription.
type Transcriber struct{}

// NewTranscriber creates a new simulated transcriber.
func NewTranscriber() *Transcriber {
	return &Transcriber{}
}

// Transcribe returns the simulated transcript for the given audio reference.
func (t *Transcriber) Transcribe(audioRef string) string {
	if audioRef == "" {
		return DefaultSimulatedTranscript
	}
	return fmt.Sprintf("%s (simulated transcription of %s)", DefaultSimulatedTranscript, audioRef)
}

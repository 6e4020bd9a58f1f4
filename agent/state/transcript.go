package state

import (
	"encoding/csv"
	"io"
)

// WriteTranscriptCSV exports the transcript as speaker/dialogue rows. This is
// a reporting concern layered on top of the session, not part of the dialogue
// contract.
func WriteTranscriptCSV(w io.Writer, transcript []Turn) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Speaker", "Dialogue"}); err != nil {
		return err
	}
	for _, turn := range transcript {
		if err := cw.Write([]string{turn.Speaker, turn.Text}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

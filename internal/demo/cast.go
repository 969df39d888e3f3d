package demo

import (
	"encoding/json"
	"io"
	"strings"
	"time"
)

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// clearScreen homes the cursor and clears the display before each frame.
const clearScreen = "\x1b[H\x1b[2J"

// GenerateASCIICast writes frames as an asciicast v2 recording. Each frame
// redraws the whole screen and is shown after the delays of the frames
// before it; annotations become markers.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	enc := json.NewEncoder(w)

	header := castHeader{
		Version: 2,
		Width:   width,
		Height:  height,
		Env:     map[string]string{"TERM": "xterm-256color", "SHELL": "/bin/sh"},
	}
	if err := enc.Encode(header); err != nil {
		return err
	}

	var at time.Duration
	for _, f := range frames {
		ts := at.Seconds()
		if f.Annotation != "" {
			if err := enc.Encode([]any{ts, "m", f.Annotation}); err != nil {
				return err
			}
		}
		data := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if err := enc.Encode([]any{ts, "o", data}); err != nil {
			return err
		}
		at += f.Delay
	}
	return nil
}

package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Emitter writes the final scan outcome to the primary channel as a single
// JSON line. It writes at most one object per invocation, after all progress
// events have been reported.
type Emitter struct {
	w    io.Writer
	path string
}

// NewEmitter returns an Emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Mirror makes the emitter additionally write the final JSON line to path,
// atomically, alongside the primary channel.
func (e *Emitter) Mirror(path string) {
	e.path = path
}

type successBody struct {
	Output []int  `json:"output"`
	Status string `json:"status"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Success emits {"output":[...],"status":"success"}. A nil slice is reported
// as an empty array, never null.
func (e *Emitter) Success(ports []int) error {
	if ports == nil {
		ports = []int{}
	}
	return e.emit(successBody{Output: ports, Status: "success"})
}

// Failure emits {"error":"..."}.
func (e *Emitter) Failure(msg string) error {
	return e.emit(errorBody{Error: msg})
}

func (e *Emitter) emit(body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	line := append(data, '\n')
	if _, err := e.w.Write(line); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if e.path != "" {
		if err := WriteAtomic(e.path, line); err != nil {
			return fmt.Errorf("mirror result: %w", err)
		}
	}
	return nil
}

// Package llm provides the reasoning backends behind classification: submit
// a prompt, receive free text. Backends are selected by configuration, not
// subclassing; everything upstream depends only on the LLM interface.
package llm

import (
	"net/http"
	"time"
)

// LLM is the external reasoning collaborator.
type LLM interface {
	Chat(prompt string) (string, error)
}

// requestTimeout bounds every backend call. A timeout surfaces as a plain
// transport error; retry policy belongs to the caller's collaborator, not
// to this package.
const requestTimeout = 60 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

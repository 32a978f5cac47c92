package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultOllamaModel = "granite3.1-dense:8b"

// Ollama talks to a local or remote Ollama daemon. No API key is involved;
// the host defaults to the standard local daemon address.
type Ollama struct {
	host   string
	client *http.Client
	model  string
}

func NewOllama(host, model string) *Ollama {
	if host == "" {
		host = "http://localhost:11434"
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	if model == "" {
		model = defaultOllamaModel
	}
	return &Ollama{
		host:   strings.TrimSuffix(host, "/"),
		client: newHTTPClient(),
		model:  model,
	}
}

func (o *Ollama) Chat(prompt string) (string, error) {
	body := map[string]interface{}{
		"model":  o.model,
		"prompt": prompt,
		"stream": false,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", o.host+"/api/generate", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Ollama API error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	var ollamaResp struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}
	if err := json.Unmarshal(respBytes, &ollamaResp); err != nil {
		return "", err
	}
	if ollamaResp.Error != "" {
		return "", fmt.Errorf("Ollama API error: %s", ollamaResp.Error)
	}
	if ollamaResp.Response == "" {
		return "", fmt.Errorf("empty response from Ollama")
	}
	return ollamaResp.Response, nil
}

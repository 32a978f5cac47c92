package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/convert2ansible/iac-ai/pkg/classifier"
	"github.com/convert2ansible/iac-ai/pkg/config"
	"github.com/convert2ansible/iac-ai/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	reply string
}

func (f *fakeLLM) Chat(string) (string, error) { return f.reply, nil }

const terraformSnippet = `resource "aws_instance" "web" {
  ami = "ami-123456"
}`

const modelReply = `Tool/Language: Terraform
Summary: Provisions an EC2 instance.
Convertible: YES
Conversion Notes: Use amazon.aws.ec2_instance.`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := config.NewStore("")
	require.NoError(t, err)

	svc := classifier.New(&fakeLLM{reply: modelReply}, store)
	ts := httptest.NewServer(New(svc, nil).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func TestClassifyEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/classify", map[string]string{"code": terraformSnippet})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env model.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.True(t, env.Success)
	require.NotNil(t, env.Data)
	assert.Equal(t, "Terraform", env.Data.Classification)
	assert.True(t, env.Data.Convertible)
	assert.Equal(t, classifier.Version, env.Version)
}

func TestClassifyEndpointRejectsShortInput(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/classify", map[string]string{"code": ""})
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var env model.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.False(t, env.Success)
	assert.Equal(t, string(classifier.KindInvalidInput), env.ErrorType)
	assert.Nil(t, env.Data)
}

func TestClassifyEndpointRejectsBadJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/classify", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBatchEndpointIsolatesFailures(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/batch-classify", map[string]interface{}{
		"snippets": []string{terraformSnippet, "", terraformSnippet},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var results []model.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&results))
	require.Len(t, results, 3)

	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Equal(t, string(classifier.KindInvalidInput), results[1].ErrorType)
	assert.True(t, results[2].Success)

	for i, env := range results {
		require.NotNil(t, env.BatchIndex)
		assert.Equal(t, i, *env.BatchIndex)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status  string      `json:"status"`
		Version string      `json:"version"`
		Config  config.Info `json:"config"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, classifier.Version, body.Version)
	assert.Equal(t, uint64(1), body.Config.Version)
}

func TestReloadEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/reload-config", map[string]string{})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Reloaded bool   `json:"reloaded"`
		Version  uint64 `json:"version"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Reloaded)
	assert.Equal(t, uint64(1), body.Version)
}

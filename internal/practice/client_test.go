package practice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestClientWrapsTransportErrors(t *testing.T) {
	client := NewClient("http://example.test", "", &http.Client{
		Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("dial error")
		}),
	})

	_, err := client.RandomQuestion(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.False(t, IsUnauthorized(err))
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Unauthorized"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", server.Client())
	_, err := client.Me(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Unauthorized", apiErr.Message)
	assert.True(t, IsUnauthorized(err))
}

func TestClientSubmitAttemptSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/attempt", r.URL.Path)
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))

		var body attemptRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, attemptRequest{QuestionID: "q1", Selected: "A"}, body)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":       true,
			"isCorrect":     true,
			"correctAnswer": "A",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", " jwt-token ", server.Client())
	result, err := client.SubmitAttempt(context.Background(), "q1", "A")
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.IsCorrect)
	assert.True(t, *result.IsCorrect)
	assert.Equal(t, "A", *result.CorrectAnswer)
}

func TestClientRandomQuestionKeepsNullOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"q2","type":"SHORT","questionText":"Why?","topic":"Economics","options":null}`))
	}))
	defer server.Close()

	q, err := NewClient(server.URL, "", server.Client()).RandomQuestion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "q2", q.ID)
	assert.Nil(t, q.Options)
}

func TestClientLoginRequiresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"user":{}}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "", server.Client()).Login(context.Background(), "a@b.c", "secret")
	assert.Error(t, err)
}

func TestTokenFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")

	token, err := LoadToken(path)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, SaveToken(path, "abc"))
	token, err = LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, ClearToken(path))
	require.NoError(t, ClearToken(path))
	token, err = LoadToken(path)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestDefaultTokenPathHonoursEnv(t *testing.T) {
	t.Setenv("RECON_TOKEN_FILE", "/tmp/recon-token")
	path, err := DefaultTokenPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/recon-token", path)
}

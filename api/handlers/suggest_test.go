package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestMatchesPool(t *testing.T) {
	assert := require.New(t)
	router := setupTestServer(t, assert)

	recorder := makeTestHTTPRequest(router, http.MethodGet, "/suggest?query=mod")
	assert.Equal(http.StatusOK, recorder.Code)

	var response SuggestResponse
	errors := decodeResponse(assert, recorder, &response)
	assert.Empty(errors)
	assert.Equal("mod", response.Query)
	assert.Contains(response.Suggestions, "models")
	assert.Contains(response.Suggestions, "model comparison")
}

func TestSuggestNoMatches(t *testing.T) {
	assert := require.New(t)
	router := setupTestServer(t, assert)

	recorder := makeTestHTTPRequest(router, http.MethodGet, "/suggest?query=xyzzy")
	assert.Equal(http.StatusOK, recorder.Code)

	var response SuggestResponse
	decodeResponse(assert, recorder, &response)
	assert.NotNil(response.Suggestions)
	assert.Empty(response.Suggestions)
}

func TestSuggestValidation(t *testing.T) {
	assert := require.New(t)
	router := setupTestServer(t, assert)

	for _, path := range []string{"/suggest", "/suggest?query=%20"} {
		recorder := makeTestHTTPRequest(router, http.MethodGet, path)
		assert.Equal(http.StatusNotAcceptable, recorder.Code)

		errors := decodeResponse[any](assert, recorder, nil)
		assert.NotEmpty(errors)
	}
}

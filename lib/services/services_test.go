package services

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	mocks "gitlab.mdcatapult.io/informatics/software-engineering/biobrick/gen/mocks/lib"
)

func TestGet(t *testing.T) {
	mockHttpClient := &mocks.HttpClient{}
	mockHttpClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("Accept") == "application/json"
	})).Return(&http.Response{
		StatusCode: http.StatusOK,
		Body:       ioutil.NopCloser(strings.NewReader(`{"ok":true}`)),
	}, nil)

	b, err := Get(context.Background(), mockHttpClient, "test", "http://localhost/ok", "application/json")
	assert.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(b))
}

func TestGetStatusError(t *testing.T) {
	mockHttpClient := &mocks.HttpClient{}
	mockHttpClient.On("Do", mock.AnythingOfType("*http.Request")).Return(&http.Response{
		StatusCode: http.StatusNotFound,
		Body:       ioutil.NopCloser(strings.NewReader("no such entry")),
	}, nil)

	_, err := Get(context.Background(), mockHttpClient, "uniprot", "http://localhost/missing", "")

	var statusErr *StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "no such entry", statusErr.Body)
	assert.Equal(t, "uniprot returned status 404 for http://localhost/missing", err.Error())
}

func TestGetTransportError(t *testing.T) {
	cause := errors.New("connection reset")
	mockHttpClient := &mocks.HttpClient{}
	mockHttpClient.On("Do", mock.AnythingOfType("*http.Request")).Return(nil, cause)

	_, err := Get(context.Background(), mockHttpClient, "pdb", "http://localhost/", "")
	assert.True(t, errors.Is(err, cause))
}

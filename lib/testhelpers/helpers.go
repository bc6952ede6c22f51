package testhelpers

import (
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/stretchr/testify/mock"
	mocks "gitlab.mdcatapult.io/informatics/software-engineering/biobrick/gen/mocks/lib"
)

// Response builds an *http.Response with the given status and body.
func Response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       ioutil.NopCloser(strings.NewReader(body)),
	}
}

// FileResponse builds a 200 response whose body is the named fixture. It panics if the fixture is missing.
func FileResponse(path string) *http.Response {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		panic(err)
	}
	return Response(http.StatusOK, string(b))
}

// OnUrl makes m answer the next request whose url starts with prefix with resp.
func OnUrl(m *mocks.HttpClient, prefix string, resp *http.Response) *mock.Call {
	return m.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return strings.HasPrefix(req.URL.String(), prefix)
	})).Return(resp, nil).Once()
}

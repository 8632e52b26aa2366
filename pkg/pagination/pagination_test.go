package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name        string
		page, limit int
		want        Params
	}{
		{"defaults kept", 1, 12, Params{Page: 1, Limit: 12}},
		{"zero page", 0, 12, Params{Page: 1, Limit: 12}},
		{"negative page", -3, 12, Params{Page: 1, Limit: 12}},
		{"zero limit", 2, 0, Params{Page: 2, Limit: DefaultLimit}},
		{"limit capped", 1, 500, Params{Page: 1, Limit: MaxLimit}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.page, tc.limit))
		})
	}
}

func TestParse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=3&limit=5", nil)
	assert.Equal(t, Params{Page: 3, Limit: 5}, Parse(c))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=abc&limit=xyz", nil)
	assert.Equal(t, Params{Page: DefaultPage, Limit: DefaultLimit}, Parse(c))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, Params{Page: DefaultPage, Limit: DefaultLimit}, Parse(c))
}

func TestTotalPages(t *testing.T) {
	p := Params{Page: 1, Limit: 12}
	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(12))
	assert.Equal(t, 2, p.TotalPages(13))
}

func TestBounds(t *testing.T) {
	p := Params{Page: 2, Limit: 5}

	start, end := p.Bounds(12)
	assert.Equal(t, 5, start)
	assert.Equal(t, 10, end)

	// A page past the end yields an empty window
	start, end = Params{Page: 4, Limit: 5}.Bounds(12)
	assert.Equal(t, 12, start)
	assert.Equal(t, 12, end)
}

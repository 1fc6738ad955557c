package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mahesh-hegde/chitra/app/config"
	"github.com/mahesh-hegde/chitra/app/dataset"
	"github.com/mahesh-hegde/chitra/app/figure"
	"github.com/mahesh-hegde/chitra/app/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	d, err := dataset.New([]*dataset.Column{
		dataset.NewNumericColumn("price", []float64{10, 20, 30}, nil),
		dataset.NewNumericColumn("rating", []float64{4.5, 3.0, 5.0}, nil),
		dataset.NewTextColumn("category", []string{"A", "B", "A"}, nil),
	})
	require.NoError(t, err)

	sess, err := session.New(d,
		figure.Selection{X: "price", Y: "rating", Z: "price", Color: "price"},
		config.Default().Plot)
	require.NoError(t, err)

	e, err := NewEcho(NewPlotController(sess), config.ServerRuntimeConfig{})
	require.NoError(t, err)
	return e
}

func doRequest(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetHome(t *testing.T) {
	e := newTestServer(t)
	rec := doRequest(e, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="scatter-3d"`)
	assert.Contains(t, body, "rating")
	assert.Contains(t, body, `data-axis="color"`)
}

func TestGetFigure(t *testing.T) {
	e := newTestServer(t)
	rec := doRequest(e, http.MethodGet, "/api/figure")
	require.Equal(t, http.StatusOK, rec.Code)

	var fig figure.Figure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fig))
	require.Len(t, fig.Data, 1)
	assert.Equal(t, "price", fig.Layout.Scene.XAxis.Title.Text)
}

func TestPostSelection(t *testing.T) {
	e := newTestServer(t)
	rec := doRequest(e, http.MethodPost, "/api/selection?axis=color&column=category")
	require.Equal(t, http.StatusOK, rec.Code)

	var fig figure.Figure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fig))
	assert.Len(t, fig.Data, 2, "discrete color mode expected after switching to a text column")

	// subsequent reads observe the new state
	rec = doRequest(e, http.MethodGet, "/api/figure")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fig))
	assert.Len(t, fig.Data, 2)
}

func TestPostSelection_UnknownColumn(t *testing.T) {
	e := newTestServer(t)
	rec := doRequest(e, http.MethodPost, "/api/selection?axis=x&column=bogus")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "bogus")
}

func TestPostSelection_MissingParams(t *testing.T) {
	e := newTestServer(t)
	rec := doRequest(e, http.MethodPost, "/api/selection")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetColumns(t *testing.T) {
	e := newTestServer(t)
	rec := doRequest(e, http.MethodGet, "/api/columns")
	require.Equal(t, http.StatusOK, rec.Code)

	var cols []columnInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cols))
	require.Len(t, cols, 3)
	assert.Equal(t, columnInfo{Name: "category", Kind: "text"}, cols[2])
}

func TestGetHelp(t *testing.T) {
	e := newTestServer(t)
	rec := doRequest(e, http.MethodGet, "/help")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1")
}

func TestFavicon(t *testing.T) {
	e := newTestServer(t)
	rec := doRequest(e, http.MethodGet, "/favicon.ico")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Something went wrong")
}

func TestStaticAssets(t *testing.T) {
	e := newTestServer(t)
	rec := doRequest(e, http.MethodGet, "/static/style.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".selectors")
}

package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mahesh-hegde/chitra/app/common"
	"github.com/mahesh-hegde/chitra/app/session"
)

// PlotController wires HTTP requests to the plotting session. The
// session itself serializes figure recomputes.
type PlotController struct {
	sess *session.Session
	help *HelpRenderer
}

func NewPlotController(sess *session.Session) *PlotController {
	return &PlotController{
		sess: sess,
		help: NewHelpRenderer(),
	}
}

type columnInfo struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type homePage struct {
	Columns   []columnInfo
	Selection any
}

func (pc *PlotController) columns() []columnInfo {
	cols := pc.sess.Dataset().Columns()
	infos := make([]columnInfo, len(cols))
	for i, c := range cols {
		infos[i] = columnInfo{Name: c.Name(), Kind: c.Kind().String()}
	}
	return infos
}

func (pc *PlotController) GetHome(c echo.Context) error {
	return c.Render(http.StatusOK, "home", homePage{
		Columns:   pc.columns(),
		Selection: pc.sess.Selection(),
	})
}

func (pc *PlotController) GetFigure(c echo.Context) error {
	return c.JSON(http.StatusOK, pc.sess.Figure())
}

// PostSelection updates a single selector and returns the freshly
// rebuilt figure.
func (pc *PlotController) PostSelection(c echo.Context) error {
	axis := c.QueryParam("axis")
	column := c.QueryParam("column")
	if axis == "" || column == "" {
		return common.NewUserVisibleError(http.StatusBadRequest,
			"both axis and column query parameters are required")
	}

	fig, err := pc.sess.Set(session.Axis(axis), column)
	if err != nil {
		return common.WrapErrorForResponse(err, "selection rejected")
	}
	return c.JSON(http.StatusOK, fig)
}

func (pc *PlotController) GetColumns(c echo.Context) error {
	return c.JSON(http.StatusOK, pc.columns())
}

func (pc *PlotController) GetHelp(c echo.Context) error {
	html, err := pc.help.HTML()
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "help", html)
}

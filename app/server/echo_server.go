package server

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cli/browser"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mahesh-hegde/chitra/app/common"
	"github.com/mahesh-hegde/chitra/app/config"
	"golang.org/x/time/rate"
)

// NewEcho assembles the routes, middleware and renderer. Split from
// StartServer so tests can drive the instance with httptest.
func NewEcho(controller *PlotController, serverConf config.ServerRuntimeConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := http.StatusText(code)

		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprintf("%v", he.Message)
			}
		}

		if ue, ok := err.(*common.UserVisibleError); ok {
			code = ue.HttpCode
			msg = ue.Message
		}

		c.Logger().Error(err)

		if c.Response().Committed {
			return
		}
		// API routes get JSON; everything else renders the error page.
		if strings.HasPrefix(c.Request().URL.Path, "/api/") {
			if jsonErr := c.JSON(code, map[string]string{"message": msg}); jsonErr != nil {
				c.Logger().Error(jsonErr)
			}
			return
		}
		if renderErr := c.Render(code, "error", msg); renderErr != nil {
			c.Logger().Error(renderErr)
		}
	}

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	if serverConf.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Skipper: middleware.DefaultSkipper,
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(
				middleware.RateLimiterMemoryStoreConfig{
					Rate:      rate.Limit(serverConf.RateLimit),
					Burst:     3 * serverConf.RateLimit,
					ExpiresIn: 3 * time.Minute,
				},
			),
			IdentifierExtractor: func(ctx echo.Context) (string, error) {
				return ctx.Request().RemoteAddr, nil
			},
			DenyHandler: func(ctx echo.Context, identifier string, err error) error {
				return ctx.String(http.StatusTooManyRequests, "Too Many Requests")
			},
		}))
	}

	if serverConf.GzipLevel != 0 {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: serverConf.GzipLevel, MinLength: 512}))
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				logger.LogAttrs(context.Background(), slog.LevelInfo, "REQUEST",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Int64("latency_ms", v.Latency.Milliseconds()),
				)
			} else {
				logger.LogAttrs(context.Background(), slog.LevelError, "REQUEST_ERROR",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String("err", v.Error.Error()),
					slog.Int64("latency_ms", v.Latency.Milliseconds()),
				)
			}
			return nil
		},
	}))

	staticDir, err := fs.Sub(staticFs, "static")
	if err != nil {
		return nil, err
	}
	staticServerHashFs, err := NewHashFS(staticDir)
	if err != nil {
		return nil, err
	}

	e.Renderer = NewTemplateRenderer(staticServerHashFs)

	e.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", staticServerHashFs)))

	e.GET("/favicon.ico", func(c echo.Context) error {
		// No icon shipped; an empty answer keeps browser tab loads out
		// of the error path and the request log.
		return c.NoContent(http.StatusNoContent)
	})

	e.GET("/", controller.GetHome)
	e.GET("/help", controller.GetHelp)
	e.GET("/api/figure", controller.GetFigure)
	e.GET("/api/columns", controller.GetColumns)
	e.POST("/api/selection", controller.PostSelection)

	return e, nil
}

// StartServer binds the server and, if configured, opens the
// operator's browser at the served address. It blocks until the
// process is stopped.
func StartServer(controller *PlotController, serverConf config.ServerRuntimeConfig) error {
	e, err := NewEcho(controller, serverConf)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", serverConf.Addr, serverConf.Port)
	url := fmt.Sprintf("http://%s", addr)

	if serverConf.OpenBrowser {
		go func() {
			// give the listener a moment to come up
			time.Sleep(300 * time.Millisecond)
			if err := browser.OpenURL(url); err != nil {
				slog.Warn("could not open browser", "url", url, "err", err)
			}
		}()
	}

	slog.Info("serving interactive plot", "url", url)
	return e.Start(addr)
}

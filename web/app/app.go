// Package app serves the browser UI: one page that selects a framework,
// generates a prompt from a task description, and revises it once.
package app

import (
	"embed"
	"net/http"

	"github.com/JaimeStill/frameforge/internal/frameworks"
	"github.com/JaimeStill/frameforge/pkg/module"
	"github.com/JaimeStill/frameforge/pkg/web"
)

//go:embed templates static
var assets embed.FS

const layout = "layout"

var (
	homeView     = web.ViewDef{Route: "/{$}", Template: "home.html", Title: "多框架提示词助手"}
	notFoundView = web.ViewDef{Template: "not-found.html", Title: "页面不存在"}
)

// HomeData is rendered into the home view.
type HomeData struct {
	APIBase    string
	Frameworks []frameworks.Entry
}

// NewModule creates the UI module mounted at basePath. apiBase is the path
// prefix the page's scripts use to reach the prompt endpoints.
func NewModule(basePath, apiBase string) (*module.Module, error) {
	router, err := buildRouter(basePath, apiBase)
	if err != nil {
		return nil, err
	}
	return module.New(basePath, router), nil
}

func buildRouter(basePath, apiBase string) (http.Handler, error) {
	ts, err := web.NewTemplateSet(
		assets,
		"templates/layout.html",
		"templates/views",
		basePath,
		[]web.ViewDef{homeView, notFoundView},
	)
	if err != nil {
		return nil, err
	}

	static, err := web.DistServer(assets, "static", "/static/")
	if err != nil {
		return nil, err
	}

	data := HomeData{
		APIBase:    apiBase,
		Frameworks: frameworks.Catalog(),
	}

	r := web.NewRouter()
	r.HandleFunc("GET "+homeView.Route, ts.PageHandler(layout, homeView, data))
	r.HandleFunc("GET /static/", static)
	r.SetFallback(ts.StatusHandler(layout, notFoundView, http.StatusNotFound, nil))

	return r, nil
}

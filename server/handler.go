package main

import (
	_ "embed"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/gorilla/handlers"
	"github.com/pkg/errors"

	"github.com/FlashbackSRS/flipdeck/config"
	"github.com/FlashbackSRS/flipdeck/deck"
	"github.com/FlashbackSRS/flipdeck/viewer"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index.html").Parse(indexHTML))

// page is the data for the index template. Deck and Config are marshaled
// to JSON by the template.
type page struct {
	Lang   string
	Title  string
	Script string
	Deck   *deck.Deck
	Config *config.Conf
}

// newHandler returns the application's routes. Paths other than the index
// and the deck are served from www.
func newHandler(d *deck.Deck, conf *config.Conf, www http.FileSystem) (http.Handler, error) {
	if _, err := viewer.OptionsFromConfig(conf); err != nil {
		return nil, err
	}
	p := page{
		Lang:   "en",
		Title:  "flipdeck",
		Script: "webclient.js",
		Deck:   d,
		Config: conf,
	}
	if locale := conf.GetString(viewer.KeyLocale); locale != "" {
		p.Lang = locale
	}
	if title := conf.GetString("title"); title != "" {
		p.Title = title
	}

	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTemplate.Execute(w, p); err != nil {
			log.Printf("render index: %s\n", err)
		}
	})
	r.Get("/index.html", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/", http.StatusMovedPermanently)
	})
	r.Get("/deck.json", func(w http.ResponseWriter, _ *http.Request) {
		data, err := d.MarshalJSON()
		if err != nil {
			http.Error(w, errors.Wrap(err, "encode deck").Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	})
	r.Handle("/*", http.FileServer(www))
	return handlers.CompressHandler(r), nil
}

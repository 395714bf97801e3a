package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"

	"github.com/FlashbackSRS/flipdeck/config"
	"github.com/FlashbackSRS/flipdeck/deck"
)

const defaultHTTPBind = ":8080"

func main() {
	deckFile := flag.String("deck", "deck.json", "deck file to serve")
	confFile := flag.String("config", "", "viewer config file")
	www := flag.String("www", "www", "static asset directory")
	flag.Parse()

	d, err := deck.LoadFile(*deckFile)
	if err != nil {
		log.Fatal(err)
	}
	conf, err := config.LoadFile(*confFile)
	if err != nil {
		log.Fatal(err)
	}
	h, err := newHandler(d, conf, http.Dir(*www))
	if err != nil {
		log.Fatal(err)
	}
	h = handlers.LoggingHandler(os.Stderr, h)
	log.Printf("Serving %d cards\n", d.Len())

	if httpsErr := BindHTTPS(h); httpsErr != nil {
		log.Print(httpsErr)
		BindHTTP(h)
	} else {
		if httpErr := RedirectHTTP(); httpErr != nil {
			log.Print(httpErr)
		}
	}
	select {}
}

func BindHTTPS(h http.Handler) error {
	bindAddress := os.Getenv("FLIPDECK_HTTPS_BIND")
	if len(bindAddress) == 0 {
		return fmt.Errorf("FLIPDECK_HTTPS_BIND not set, not serving HTTPS")
	}
	log.Printf("Serving via HTTPS on %s\n", bindAddress)
	go func() {
		log.Fatal(http.ListenAndServeTLS(bindAddress, os.Getenv("FLIPDECK_SSL_CERT"), os.Getenv("FLIPDECK_SSL_KEY"), h))
	}()
	return nil
}

func BindHTTP(h http.Handler) {
	bindAddress := os.Getenv("FLIPDECK_HTTP_BIND")
	if len(bindAddress) == 0 {
		bindAddress = defaultHTTPBind
	}
	log.Printf("Serving via HTTP on %s\n", bindAddress)
	go func() {
		log.Fatal(http.ListenAndServe(bindAddress, h))
	}()
}

func RedirectHTTP() error {
	bindAddress := os.Getenv("FLIPDECK_HTTP_BIND")
	if len(bindAddress) == 0 {
		return fmt.Errorf("FLIPDECK_HTTP_BIND not set, not redirecting HTTP")
	}
	baseURI := os.Getenv("FLIPDECK_BASEURI")
	if len(baseURI) == 0 {
		return fmt.Errorf("FLIPDECK_BASEURI must be set to redirect HTTP")
	}
	log.Printf("Redirecting HTTP on %s to %s\n", bindAddress, baseURI)
	go func() {
		log.Fatal(http.ListenAndServe(bindAddress, handlers.LoggingHandler(os.Stderr, RedirectHandler(baseURI))))
	}()
	return nil
}

// RedirectHandler sends every request to baseURI.
func RedirectHandler(baseURI string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, baseURI, http.StatusFound)
	})
}

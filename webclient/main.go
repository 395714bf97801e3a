// +build js

package main

import (
	"sync"
	"time"

	"github.com/flimzy/log"
	"github.com/gopherjs/gopherjs/js"
	"github.com/gopherjs/jquery"
	"github.com/pkg/errors"

	"github.com/FlashbackSRS/flipdeck/config"
	"github.com/FlashbackSRS/flipdeck/deck"
	"github.com/FlashbackSRS/flipdeck/l10n"
	"github.com/FlashbackSRS/flipdeck/viewer"
)

// Some spiffy shortcuts
var jQuery = jquery.NewJQuery
var document = js.Global.Get("document")

// startDelay lets the layout settle before the first card slides in.
const startDelay = 30 * time.Millisecond

func main() {
	jQuery(func() {
		go func() {
			if err := run(); err != nil {
				log.Printf("flipdeck: %+v\n", err)
			}
		}()
	})
}

func run() error {
	var wg sync.WaitGroup
	initCordova(&wg)

	conf, err := loadConfig()
	if err != nil {
		return err
	}
	d, err := loadDeck()
	if err != nil {
		return err
	}
	set, err := l10n.New(preferredLanguages(conf), l10n.Builtin)
	if err != nil {
		return err
	}
	T, err := set.Tfunc()
	if err != nil {
		return errors.Wrap(err, "load translations")
	}
	localize(set.Locale, T)

	opts, err := viewer.OptionsFromConfig(conf)
	if err != nil {
		return err
	}
	opts.CardLabel = l10n.Labeller(T)

	wg.Wait()
	root := jQuery("#cardRoot")
	if root.Length == 0 {
		return errors.New("no #cardRoot element")
	}
	surface := newSurface(root)
	if d.Len() == 0 {
		surface.notice(T(l10n.EmptyDeck))
		return nil
	}
	v := viewer.New(d, surface, jsClock{}, opts)
	bindCards(v, root)
	bindControls(v)
	jsClock{}.AfterFunc(startDelay, v.Start)
	log.Debugf("Showing %d cards\n", d.Len())
	return nil
}

// embedded returns the text of the JSON script block with the given id, or
// "" if there is none.
func embedded(id string) string {
	el := jQuery(`script[type="application/json"]#` + id)
	if el.Length == 0 {
		return ""
	}
	return el.Text()
}

func loadConfig() (*config.Conf, error) {
	data := embedded("config")
	if data == "" {
		return config.New(nil), nil
	}
	return config.NewFromJSON([]byte(data))
}

func loadDeck() (*deck.Deck, error) {
	data := embedded("deck")
	if data == "" {
		return deck.New(nil), nil
	}
	return deck.NewFromJSON([]byte(data))
}

// +build js

package main

import (
	"sync"

	"github.com/flimzy/go-cordova"
	"github.com/flimzy/log"
	"github.com/gopherjs/gopherjs/js"
	"github.com/nicksnyder/go-i18n/i18n/bundle"
	"golang.org/x/text/language"

	"github.com/FlashbackSRS/flipdeck/config"
	"github.com/FlashbackSRS/flipdeck/l10n"
	"github.com/FlashbackSRS/flipdeck/viewer"
)

const langTagAttr = "data-lt"
const localeAttr = "data-locale"

// preferredLanguages puts a configured locale ahead of the device's and the
// browser's own preferences. It blocks on the globalization plugin when
// running under Cordova.
func preferredLanguages(conf *config.Conf) []language.Tag {
	var names []string
	if locale := conf.GetString(viewer.KeyLocale); locale != "" {
		names = append(names, locale)
	}
	nav := js.Global.Get("navigator")
	if cordova.IsMobile() {
		names = append(names, deviceLanguage(nav)...)
	}
	if languages := nav.Get("languages"); languages != js.Undefined && languages != nil {
		for i := 0; i < languages.Length(); i++ {
			names = append(names, languages.Index(i).String())
		}
	}
	if lang := nav.Get("language"); lang != js.Undefined && lang != nil {
		names = append(names, lang.String())
	}
	log.Debugf("Preferred languages: %v\n", names)
	return l10n.ParseTags(names...)
}

// deviceLanguage asks the Cordova globalization plugin for the device
// language. Errors and a missing plugin yield nothing.
func deviceLanguage(nav *js.Object) []string {
	g := nav.Get("globalization")
	if g == js.Undefined || g == nil {
		return nil
	}
	var names []string
	var wg sync.WaitGroup
	wg.Add(1)
	g.Call("getPreferredLanguage", func(l *js.Object) {
		defer wg.Done()
		if v := l.Get("value"); v != js.Undefined && v != nil {
			names = append(names, v.String())
		}
	}, func() {
		defer wg.Done()
	})
	wg.Wait()
	return names
}

// localize replaces the text of every element tagged with a message ID.
func localize(locale string, T bundle.TranslateFunc) {
	elements := jQuery("[" + langTagAttr + "]").Not("[" + localeAttr + "='" + locale + "']")
	for i := 0; i < elements.Length; i++ {
		elem := elements.Get(i)
		id := elem.Call("getAttribute", langTagAttr).String()
		if translated := T(id); translated != id {
			elem.Set("textContent", translated)
			elem.Call("setAttribute", localeAttr, locale)
		} else {
			log.Debugf("No translation for %s\n", id)
		}
	}
}

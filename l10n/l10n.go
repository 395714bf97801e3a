// Package l10n selects the display language and provides the translated
// interface strings.
package l10n

import (
	"embed"
	"strings"
	"sync"

	"github.com/flimzy/log"
	"github.com/nicksnyder/go-i18n/i18n/bundle"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Message IDs
const (
	ExplainToggle    = "explain_toggle"
	ListOpen         = "list_open"
	ListTitle        = "list_title"
	ListClose        = "list_close"
	CardLabel        = "card_label"
	TipBack          = "tip_back"
	TipNext          = "tip_next"
	EmptyDeck        = "empty_deck"
	TerminalHelp     = "terminal_help"
	TerminalListHelp = "terminal_list_help"
)

const fallbackLocale = "en-us"

var supported = []language.Tag{
	language.MustParse("en_US"),
	language.MustParse("de_DE"),
}

var matcher = language.NewMatcher(supported)

//go:embed translations/*.all.json
var translations embed.FS

// Set represents a language set.
type Set struct {
	Locale        string
	initWG        sync.WaitGroup
	tfunc         bundle.TranslateFunc
	fallbackTfunc bundle.TranslateFunc
	err           error
}

// FetchCallback receives the name of a locale, and must return the translation
// rules (in JSON) for that locale.
type FetchCallback func(locale string) ([]byte, error)

// Builtin is a FetchCallback serving the compiled-in translations.
func Builtin(locale string) ([]byte, error) {
	data, err := translations.ReadFile("translations/" + locale + ".all.json")
	return data, errors.Wrapf(err, "no translations for %s", locale)
}

// ParseTags parses language names as found in browser preferences ("de-AT")
// or the environment ("de_AT.UTF-8"). Unparseable names are skipped.
func ParseTags(names ...string) []language.Tag {
	tags := make([]language.Tag, 0, len(names))
	for _, name := range names {
		if i := strings.IndexAny(name, ".@"); i >= 0 {
			name = name[:i]
		}
		if name == "" || name == "C" || name == "POSIX" {
			continue
		}
		tag, err := language.Parse(name)
		if err != nil {
			log.Debugf("Ignoring language '%s': %s\n", name, err)
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// New initializes a new language set.
func New(preferredLanguages []language.Tag, fetch FetchCallback) (*Set, error) {
	if fetch == nil {
		return nil, errors.New("fetch callback required")
	}
	_, idx, conf := matcher.Match(preferredLanguages...)
	tag := supported[idx]
	log.Debugf("Selected language %s (preference choice %d with %s confidence)\n", tag, idx, conf)
	s := &Set{
		Locale: strings.ToLower(tag.String()),
	}
	s.initWG.Add(1)
	go s.init(fetch)
	return s, nil
}

func (s *Set) init(fetch FetchCallback) {
	defer s.initWG.Done()
	if s.Locale != fallbackLocale {
		s.tfunc, s.err = loadDictionary(s.Locale, fetch)
		if s.err != nil {
			return
		}
	}
	s.fallbackTfunc, s.err = loadDictionary(fallbackLocale, fetch)
}

func loadDictionary(locale string, fetch FetchCallback) (bundle.TranslateFunc, error) {
	translations, err := fetch(locale)
	if err != nil {
		return nil, err
	}
	bdl := bundle.New()
	if e := bdl.ParseTranslationFileBytes(locale+".all.json", translations); e != nil {
		return nil, e
	}
	return bdl.Tfunc(locale, locale)
}

// Tfunc returns a translation function.
func (s *Set) Tfunc() (bundle.TranslateFunc, error) {
	s.initWG.Wait()
	if s.err != nil {
		return nil, s.err
	}
	return func(id string, args ...interface{}) string {
		if s.tfunc != nil {
			if result := s.tfunc(id, args...); result != id {
				return result
			}
			log.Debugf("No result looking up tag '%s'\n", id)
		}
		if result := s.fallbackTfunc(id, args...); result != id {
			return result
		}
		log.Debugf("No result looking up fallback tag '%s'\n", id)
		return id
	}, nil
}

// Labeller returns a function naming the nth card, for cards without a
// question.
func Labeller(T bundle.TranslateFunc) func(n int) string {
	return func(n int) string {
		return T(CardLabel, map[string]interface{}{"Number": n})
	}
}

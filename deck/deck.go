// Package deck holds the static, read-only collection of flashcards presented
// by the viewer.
package deck

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// NoExplanation is the sentinel explanation value meaning that a card has
// nothing further to explain.
const NoExplanation = "/"

// Card is a single flashcard record.
type Card struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

type legacyCard struct {
	Question    string `json:"frage"`
	Answer      string `json:"antwort"`
	Explanation string `json:"erklaerung"`
}

// UnmarshalJSON accepts both the canonical keys and the older
// frage/antwort/erklaerung keys. Canonical keys win when both are present.
func (c *Card) UnmarshalJSON(data []byte) error {
	type card Card
	var canonical card
	if err := json.Unmarshal(data, &canonical); err != nil {
		return err
	}
	var legacy legacyCard
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}
	*c = Card{
		Question:    firstNonEmpty(canonical.Question, legacy.Question),
		Answer:      firstNonEmpty(canonical.Answer, legacy.Answer),
		Explanation: firstNonEmpty(canonical.Explanation, legacy.Explanation),
	}
	return nil
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}

// HasExplanation returns false when the card's explanation is empty or the
// NoExplanation sentinel.
func (c Card) HasExplanation() bool {
	return c.Explanation != "" && c.Explanation != NoExplanation
}

// Deck is an ordered, immutable sequence of cards.
type Deck struct {
	cards []Card
}

// New returns a deck containing a copy of cards.
func New(cards []Card) *Deck {
	c := make([]Card, len(cards))
	copy(c, cards)
	return &Deck{cards: c}
}

// Len returns the number of cards in the deck. A nil deck is empty.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.cards)
}

// Card returns the card at index i.
func (d *Deck) Card(i int) (Card, bool) {
	if i < 0 || i >= d.Len() {
		return Card{}, false
	}
	return d.cards[i], true
}

// Cards returns a copy of the deck's cards, in order.
func (d *Deck) Cards() []Card {
	c := make([]Card, d.Len())
	if d != nil {
		copy(c, d.cards)
	}
	return c
}

// MarshalJSON encodes the deck in the canonical file format.
func (d *Deck) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Cards())
}

// Validate checks every card. All problems are reported together.
func Validate(cards []Card) error {
	var errs *multierror.Error
	for i, c := range cards {
		if c.Question == "" && c.Answer == "" {
			errs = multierror.Append(errs, errors.Errorf("card %d: question and answer are both empty", i+1))
		}
	}
	return errs.ErrorOrNil()
}

// NewFromJSON parses and validates a deck file.
func NewFromJSON(data []byte) (*Deck, error) {
	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, errors.Wrap(err, "parse deck")
	}
	if err := Validate(cards); err != nil {
		return nil, errors.Wrap(err, "invalid deck")
	}
	return &Deck{cards: cards}, nil
}

// Load reads a deck file from r.
func Load(r io.Reader) (*Deck, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read deck")
	}
	return NewFromJSON(data)
}

// LoadFile reads the deck file at path.
func LoadFile(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open deck")
	}
	defer f.Close()
	d, err := Load(f)
	return d, errors.Wrapf(err, "load %s", path)
}

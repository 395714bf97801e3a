package main

import (
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/flimzy/log"
	"github.com/pkg/errors"

	"github.com/FlashbackSRS/flipdeck/config"
	"github.com/FlashbackSRS/flipdeck/deck"
	"github.com/FlashbackSRS/flipdeck/l10n"
	"github.com/FlashbackSRS/flipdeck/tui"
	"github.com/FlashbackSRS/flipdeck/viewer"
)

func main() {
	deckFile := flag.String("deck", "deck.json", "deck file to show")
	confFile := flag.String("config", "", "viewer config file")
	flag.Parse()

	if err := run(*deckFile, *confFile); err != nil {
		log.Printf("%s\n", err)
		os.Exit(1)
	}
}

func run(deckFile, confFile string) error {
	d, err := deck.LoadFile(deckFile)
	if err != nil {
		return err
	}
	conf, err := config.LoadFile(confFile)
	if err != nil {
		return err
	}
	opts, err := viewer.OptionsFromConfig(conf)
	if err != nil {
		return err
	}

	langs := l10n.ParseTags(conf.GetString(viewer.KeyLocale), os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
	set, err := l10n.New(langs, l10n.Builtin)
	if err != nil {
		return err
	}
	T, err := set.Tfunc()
	if err != nil {
		return errors.Wrap(err, "load translations")
	}

	m := tui.New(d, tui.Options{Options: opts, T: T})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "terminal")
	}
	return nil
}

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"blackjackround/internal/config"
	"blackjackround/internal/game"
	"blackjackround/internal/report"
	"blackjackround/internal/rng"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var (
	seed  = flag.Int64("seed", 0, "shuffle seed, 0 uses the config value or a crypto source")
	tie   = flag.String("tie", "", "who wins equal hands: player, dealer or push")
	plain = flag.Bool("plain", false, "plain text output")
)

type options struct {
	seed  int64
	tie   game.TiePolicy
	plain bool
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	if err := cfg.SetupLogger(); err != nil {
		logrus.WithError(err).Fatal("failed to set up logger")
	}

	opts := options{
		seed:  cfg.Seed,
		tie:   cfg.Tie(),
		plain: *plain || !term.IsTerminal(int(os.Stdout.Fd())),
	}

	if *seed != 0 {
		opts.seed = *seed
	}

	if *tie != "" {
		if opts.tie, err = game.ParseTiePolicy(*tie); err != nil {
			logrus.WithError(err).Fatal("bad -tie flag")
		}
	}

	if err := run(os.Stdout, opts); err != nil {
		logrus.WithError(err).Fatal("failed to write report")
	}
}

func run(w io.Writer, opts options) error {
	r := game.NewRound(rng.New(opts.seed), opts.tie)

	logrus.WithFields(logrus.Fields{
		"round": r.ID,
		"seed":  opts.seed,
		"tie":   opts.tie,
	}).Debug("dealing")

	if opts.plain {
		_, err := io.WriteString(w, report.Text(r))
		return err
	}

	_, err := io.WriteString(w, render(r))
	return err
}

func render(r *game.Round) string {
	box := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).WithTitleTopCenter()

	hands := box.WithTitle(pterm.LightCyan("|HANDS|")).Sprint(
		report.HandLine(game.Dealer, r.Dealer) + "\n" + report.HandLine(game.Player, r.Player))

	var outcome string
	switch r.Result {
	case game.ResultDealerWin:
		outcome = pterm.LightRed(report.Outcome(r))
	case game.ResultPlayerWin:
		outcome = pterm.LightGreen(report.Outcome(r))
	default:
		outcome = pterm.LightYellow(report.Outcome(r))
	}

	result := box.WithTitle(pterm.LightYellow("|RESULT|")).Sprint(outcome)

	return fmt.Sprintf("%s\n%s\n%s\n", hands, result, report.DeckSummary(r.Deck))
}

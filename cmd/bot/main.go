package main

import (
	"os"
	"os/signal"
	"syscall"

	"blackjackround/internal/bot"
	"blackjackround/internal/config"
	"blackjackround/internal/database"
	"blackjackround/internal/history"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	if err := cfg.SetupLogger(); err != nil {
		logrus.WithError(err).Fatal("failed to set up logger")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	logrus.WithField("path", cfg.DatabasePath).Info("database connected")

	b, err := bot.New(cfg, history.NewRepository(db.DB))
	if err != nil {
		logrus.WithError(err).Fatal("failed to create bot")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logrus.Info("shutting down")
		b.Stop()
	}()

	if err := b.Run(); err != nil {
		logrus.WithError(err).Error("bot error")
	}
}

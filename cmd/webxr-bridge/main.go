package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/webxr/oerror"
	"github.com/oomph-ac/webxr/settings"
	"github.com/sirupsen/logrus"
)

const settingsPath = "config.toml"

func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	s := readSettings(log)
	level, err := logrus.ParseLevel(s.Log.Level)
	if err != nil {
		log.Fatalf("invalid log level %q: %v", s.Log.Level, err)
	}
	log.Level = level

	if dsn := s.Diagnostics.SentryDSN; dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Fatalf("sentry init: %v", err)
		}
		defer sentry.Flush(time.Second * 5)
	}
	if s.Diagnostics.StatsView {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(s.Diagnostics.StatsViewAddr))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	b, err := NewBridge(log, s)
	if err != nil {
		var ce *oerror.ConfigurationError
		if errors.As(err, &ce) {
			log.Fatalf("engine configuration: %v", err)
		}
		log.Fatalf("start bridge: %v", err)
	}
	defer b.Close()

	mux := http.NewServeMux()
	mux.Handle(s.Bridge.Path, b)
	srv := &http.Server{Addr: s.Bridge.Address, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()
	log.Infof("webxr bridge is now listening on ws://%s%s", s.Bridge.Address, s.Bridge.Path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := b.Run(ctx); err != nil {
		log.Errorf("frame loop stopped: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

// readSettings reads the settings from config.toml, creating the file with defaults if it does
// not exist yet.
func readSettings(log *logrus.Logger) settings.Settings {
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := settings.SaveDefault(settingsPath); err != nil {
			log.Fatalf("error creating settings: %v", err)
		}
	}
	s, err := settings.Load(settingsPath)
	if err != nil {
		log.Fatalf("error reading settings: %v", err)
	}
	return s
}

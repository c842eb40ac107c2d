package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adscheck/pkg/config"
	"adscheck/pkg/lint"
	"adscheck/pkg/logger"
	"adscheck/pkg/registry"
	"adscheck/pkg/report"
	"adscheck/pkg/version"
)

func main() {
	cfg, err := config.Setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Setup(cfg.Logging.Level, cfg.Logging.File)
	log.Info("checking ads.txt files", "version", version.AdscheckVersion, "files", len(cfg.Files))

	ok := runCheck(cfg, log, os.Stdout)

	if cfg.Check.RefreshInterval <= 0 {
		if !ok {
			os.Exit(1)
		}
		return
	}

	// Resident mode: re-check on every tick and on SIGHUP.
	ticker := time.NewTicker(cfg.Check.RefreshInterval)
	defer ticker.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for {
		select {
		case <-ticker.C:
			runCheck(cfg, log, os.Stdout)
		case sig := <-sigChan:
			switch sig {
			case syscall.SIGHUP:
				log.Info("received SIGHUP signal, re-checking files")
				runCheck(cfg, log, os.Stdout)
			case syscall.SIGINT, syscall.SIGTERM:
				log.Info("received shutdown signal", "signal", sig)
				return
			}
		}
	}
}

// runCheck loads, lints and reports every configured file. It returns false
// when any file failed to load or produced parse errors.
func runCheck(cfg *config.Config, log *slog.Logger, w io.Writer) bool {
	ok := true

	for name, file := range cfg.Files {
		if err := registry.LoadFromFile(name, file.Path, cfg.Check.Strict, log); err != nil {
			log.Error("failed to load ads.txt file", "file", name, "error", err)
			ok = false
		}
	}

	entries := registry.All()
	summaries := make([]report.Summary, 0, len(entries))
	for name, entry := range entries {
		findings := lint.Check(name, entry.Doc)

		limiter := lint.NewLimiter(cfg.Logging.LintErrorLimit)
		for _, finding := range findings {
			limiter.Log(log, finding)
		}
		limiter.Summary(log, name)

		if len(entry.Errors) > 0 {
			ok = false
		}
		summaries = append(summaries, report.Summarize(name, entry, findings))
	}

	if err := report.Render(w, cfg.Check.Report, summaries); err != nil {
		log.Error("failed to render report", "error", err)
		ok = false
	}

	return ok
}

// Package main provides the entry point for the Inkpad drawing surface.
package main

import (
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"github.com/sirupsen/logrus"

	"inkpad/internal/app"
	"inkpad/internal/version"
	"inkpad/ui/mainwindow"
	"inkpad/ui/prefs"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.WithFields(logrus.Fields{
		"version": version.Version,
		"commit":  version.GitCommit,
	}).Info("starting inkpad")

	fyneApp := fyneapp.New()
	fyneApp.Settings().SetTheme(&app.InkpadTheme{})

	state := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, state, appPrefs)

	setupHotReload(win)

	win.Show()
	fyneApp.Run()
}

// setupHotReload prompts for a restart when a newer binary appears on disk,
// so a development loop doesn't keep testing stale code.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		logrus.Warn("hot reload: unable to determine executable path")
		return
	}

	logrus.WithField("path", reloader.ExecPath()).Debug("hot reload: watching binary")

	reloader.OnNewBinary(func() {
		logrus.Info("hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if !restart {
					reloader.ResetBaseline()
					reloader.Start()
					return
				}
				win.SavePreferences()
				if err := reloader.Restart(); err != nil {
					logrus.WithError(err).Error("hot reload: restart failed")
				}
			}, win)
	})

	reloader.Start()
}

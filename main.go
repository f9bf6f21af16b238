package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/simplehac/simpletoolkit/internal/api"
	"github.com/simplehac/simpletoolkit/internal/bridge"
	"github.com/simplehac/simpletoolkit/internal/bridge/native"
	"github.com/simplehac/simpletoolkit/internal/catalog"
	"github.com/simplehac/simpletoolkit/internal/config"
	"github.com/simplehac/simpletoolkit/internal/push"
	"github.com/simplehac/simpletoolkit/internal/ui"
	"github.com/simplehac/simpletoolkit/internal/update"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.simplehac.simpletoolkit"
	AppName = "SimpleToolkit"

	shutdownTimeout = 3 * time.Second
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.LogoOrDefault())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)

	client, err := api.NewClient(settings.GetAPIBaseURL(), nil)
	if err != nil {
		log.Printf("Invalid backend URL, falling back to %s: %v", config.DefaultAPIBaseURL, err)
		client, _ = api.NewClient(config.DefaultAPIBaseURL, nil)
	}
	log.Printf("Using backend %s", client.BaseURL())

	// The native dialogs are available as soon as the app runs
	loader := bridge.NewLoader()
	loader.Attach(native.New(native.SaveDialogTitle))

	rootUI := ui.NewRootUI(myWindow, myApp, settings, ui.Services{
		Backend:     client,
		Preferences: client,
		Catalog:     catalog.New(client, catalog.DefaultMaxRetries, catalog.DefaultRetryDelay),
		Updater:     update.NewChecker(client, version),
		Loader:      loader,
	})

	pushServer := push.NewServer(settings.GetPushAddress(), rootUI.Manager())
	if err := pushServer.Start(); err != nil {
		log.Printf("Progress listener not started: %v", err)
	} else {
		log.Printf("Progress listener at %s", pushServer.URL())
	}

	myWindow.SetOnClosed(func() {
		rootUI.Close()
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := pushServer.Shutdown(ctx); err != nil {
			log.Printf("Progress listener shutdown: %v", err)
		}
	})

	rootUI.Start()
	myWindow.ShowAndRun()
}

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nextgeneev/nextgen-ev/config"
	"github.com/nextgeneev/nextgen-ev/internal/adminapi"
	"github.com/nextgeneev/nextgen-ev/internal/app"
	"github.com/nextgeneev/nextgen-ev/internal/siteapi"
	"github.com/nextgeneev/nextgen-ev/internal/webserver"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

var (
	h        bool
	x        bool
	conffile string
)

func init() {
	flag.BoolVar(&h, "h", false, "help usage")
	flag.BoolVar(&x, "x", false, "print default config and exit")
	flag.StringVar(&conffile, "c", "", "config yaml file")
}

func printDefaultConfig() {
	bs, err := yaml.Marshal(config.DefaultAppConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(bs))
}

func main() {
	flag.Parse()
	if h {
		flag.Usage()
		return
	}
	if x {
		printDefaultConfig()
		return
	}

	cfg := config.LoadConfig(conffile)

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	webserver.Init(application)
	adminapi.RegisterRoutes()
	siteapi.RegisterRoutes()

	errchan := make(chan error, 1)
	go func() {
		errchan <- webserver.Listen()
	}()

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errchan:
		zap.S().Errorf("web server stopped: %v", err)
	case sig := <-sigchan:
		zap.S().Infof("received signal %s, shutting down", sig)
		webserver.Shutdown()
	}
}

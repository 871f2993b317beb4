package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/nextgeneev/nextgen-ev/config"
	"github.com/nextgeneev/nextgen-ev/internal/assetrelay"
	"github.com/nextgeneev/nextgen-ev/internal/catalog"
	"github.com/nextgeneev/nextgen-ev/internal/mailer"
	"github.com/nextgeneev/nextgen-ev/pkg/common"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Application struct {
	appConfig *config.AppConfig
	store     *catalog.Store
	notifier  *catalog.Notifier
	relay     catalog.Relay
	products  *catalog.ProductManager
	media     *catalog.MediaManager
	mailer    MailSender
	sched     *cron.Cron
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ StoreProvider     = (*Application)(nil)
	_ CatalogProvider   = (*Application)(nil)
	_ RelayProvider     = (*Application)(nil)
	_ MailProvider      = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ WebContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig         { return a.appConfig }
func (a *Application) Store() *catalog.Store             { return a.store }
func (a *Application) Notifier() *catalog.Notifier       { return a.notifier }
func (a *Application) Relay() catalog.Relay              { return a.relay }
func (a *Application) Products() *catalog.ProductManager { return a.products }
func (a *Application) Media() *catalog.MediaManager      { return a.media }
func (a *Application) Mailer() MailSender                { return a.mailer }
func (a *Application) Scheduler() *cron.Cron             { return a.sched }

// OverrideRelay replaces the asset relay and rebuilds the managers on top of
// it (used in tests).
func (a *Application) OverrideRelay(relay catalog.Relay) {
	a.relay = relay
	base := a.appConfig.Cloudinary.BaseFolder
	a.products = catalog.NewProductManager(a.store, relay, a.notifier, base)
	a.media = catalog.NewMediaManager(a.store, relay, a.notifier, base)
}

// OverrideMailer replaces the mail sender (used in tests).
func (a *Application) OverrideMailer(m MailSender) {
	a.mailer = m
}

func (a *Application) Init(cfg *config.AppConfig) {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	initLogger(cfg)

	common.MakeDirs(cfg.System.Workdir, cfg.GetLogDir(), cfg.GetBackupDir())

	store, err := catalog.OpenStore(cfg.GetCatalogPath())
	if err != nil {
		zap.S().Fatalf("catalog store open failed: %v", err)
	}
	a.store = store
	zap.S().Infof("Catalog store opened: %s", cfg.GetCatalogPath())

	a.notifier = catalog.NewNotifier()
	a.relay = assetrelay.NewClient(cfg.Cloudinary, "")
	a.products = catalog.NewProductManager(a.store, a.relay, a.notifier, cfg.Cloudinary.BaseFolder)
	a.media = catalog.NewMediaManager(a.store, a.relay, a.notifier, cfg.Cloudinary.BaseFolder)
	a.mailer = mailer.NewMailer(cfg.Smtp)

	a.initJob()
}

func initLogger(cfg *config.AppConfig) {
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.store != nil {
		_ = a.store.Close()
	}
	_ = zap.L().Sync()
}

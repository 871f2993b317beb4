package app

import (
	"github.com/nextgeneev/nextgen-ev/config"
	"github.com/nextgeneev/nextgen-ev/internal/catalog"
	"github.com/nextgeneev/nextgen-ev/internal/domain"
	"github.com/robfig/cron/v3"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides catalog store access
type StoreProvider interface {
	Store() *catalog.Store
}

// CatalogProvider provides the catalog managers and change notifier
type CatalogProvider interface {
	Products() *catalog.ProductManager
	Media() *catalog.MediaManager
	Notifier() *catalog.Notifier
}

// RelayProvider provides the remote asset relay
type RelayProvider interface {
	Relay() catalog.Relay
}

// MailSender delivers the two-message notification pairs
type MailSender interface {
	SendContact(form domain.ContactForm) error
	SendDealership(form domain.DealershipForm) error
}

// MailProvider provides the mail sender
type MailProvider interface {
	Mailer() MailSender
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// WebContext combines the provider interfaces the HTTP layer depends on.
// Handlers should depend on specific providers or this combined interface.
type WebContext interface {
	ConfigProvider
	StoreProvider
	CatalogProvider
	RelayProvider
	MailProvider
}

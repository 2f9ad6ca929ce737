package service

import (
	"github.com/MKhiriev/go-user-client/internal/adapter"
	"github.com/MKhiriev/go-user-client/internal/app"
	"github.com/MKhiriev/go-user-client/internal/config"
	"github.com/MKhiriev/go-user-client/internal/logger"
	"github.com/MKhiriev/go-user-client/internal/store"
)

// ClientServices groups the services used by the command-line client.
type ClientServices struct {
	UserService UserService
}

func NewClientServices(appCfg config.ClientApp, storages *store.ClientStorages, userAPI adapter.UserAPI, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		UserService: NewUserService(userAPI, storages.Session, app.NewPrinter(appCfg.Locale), logger),
	}
}

package di

import (
	notificationService "multimedia/internal/domains/notification/service"
	registerService "multimedia/internal/domains/register/service"
)

// Capture is the register workflow without the HTTP transport. Presenter is
// the one Register reports through, so callers can flush it before exiting.
type Capture struct {
	Register  registerService.Register
	Presenter notificationService.Presenter
}

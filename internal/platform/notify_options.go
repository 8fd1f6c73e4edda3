// Package platform sends desktop notifications through the host's
// notification service.
package platform

import "time"

// DefaultTimeout is how long a notification stays visible when Options does
// not say otherwise.
const DefaultTimeout = 5 * time.Second

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName is reported as the sending application where supported.
	AppName string
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// Timeout overrides DefaultTimeout. Not every platform honours it.
	Timeout time.Duration
}

func (o Options) appName() string {
	if o.AppName == "" {
		return "RasterPaint"
	}
	return o.AppName
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

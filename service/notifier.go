package service

import (
	"logo-banner/models"
	"logo-banner/utils"
)

// NotifierInterface delivers user-facing notifications
type NotifierInterface interface {
	Notify(n models.Notification)
}

// LogNotifier writes notifications to the application log
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) Notify(n models.Notification) {
	n = n.WithDefaults()
	switch n.Type {
	case models.NotificationError:
		utils.Log().Errorf("❌ %s", n.Message)
	case models.NotificationWarning:
		utils.Log().Warnf("⚠️  %s", n.Message)
	case models.NotificationSuccess:
		utils.Log().Infof("✓ %s", n.Message)
	default:
		utils.Log().Infof("🔔 %s", n.Message)
	}
}

// NotifierFunc adapts a function to NotifierInterface
type NotifierFunc func(n models.Notification)

func (f NotifierFunc) Notify(n models.Notification) {
	f(n)
}

var (
	_ NotifierInterface = LogNotifier{}
	_ NotifierInterface = NotifierFunc(nil)
)

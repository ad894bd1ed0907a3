package notifier

import (
	"context"

	"dsc/core"

	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/yiplee/structs"
)

type logNotifier struct{}

// Log writes every event to the context logger
func Log() core.Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(ctx context.Context, event *core.Event) {
	fields := logrus.Fields(structs.Map(event))
	if event.Amount != nil {
		fields["amount"] = event.Amount.Dec()
	}

	logger.FromContext(ctx).WithFields(fields).Infoln("event", event.Type)
}

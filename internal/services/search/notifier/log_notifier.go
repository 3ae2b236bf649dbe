package notifier

import (
	"log/slog"

	"github.com/Pomi44/OIB/internal/services/search"
)

type logNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *logNotifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(result *search.Result) error {
	if result.Found() {
		n.logger.Info("found card number",
			slog.String("task_id", result.TaskID.String()),
			slog.String("card_number", result.Candidate),
			slog.Uint64("examined", result.Examined),
		)
		return nil
	}

	n.logger.Info("card number not found",
		slog.String("task_id", result.TaskID.String()),
		slog.Uint64("examined", result.Examined),
	)
	return nil
}

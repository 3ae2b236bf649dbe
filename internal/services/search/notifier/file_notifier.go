package notifier

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Pomi44/OIB/internal/services/search"
	"github.com/p7r0x7/vainpath"
)

type FileNotifierConfig struct {
	DataPath string `yaml:"data_path"`
}

// CardRecord is the on-disk form of a recovered identifier.
type CardRecord struct {
	CardNumber string `json:"card_number"`
}

type fileNotifier struct {
	path string
}

func NewFileNotifier(config *FileNotifierConfig) *fileNotifier {
	return &fileNotifier{
		path: config.DataPath,
	}
}

// Notify writes found identifiers to the data file; other results are ignored.
func (n *fileNotifier) Notify(result *search.Result) error {
	if !result.Found() {
		return nil
	}

	data, err := json.Marshal(CardRecord{CardNumber: result.Candidate})
	if err != nil {
		return fmt.Errorf("failed to marshal card record: %w", err)
	}

	if dir := filepath.Dir(n.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	if err := os.WriteFile(n.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write card record: %w", err)
	}

	slog.Info("card number saved",
		slog.String("task_id", result.TaskID.String()),
		slog.String("path", vainpath.Simplify(n.path)),
	)

	return nil
}

// ReadCardRecord loads a record written by the file notifier.
func ReadCardRecord(path string) (*CardRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	record := &CardRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("failed to decode card record: %w", err)
	}

	return record, nil
}

package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"focusflow/internal/store"
)

func ToCSV(sessions []store.StudySession, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Type", "Minutes", "Timestamp"}); err != nil {
		return err
	}

	for _, s := range sessions {
		row := []string{
			fmt.Sprintf("%d", s.ID),
			s.Type,
			fmt.Sprintf("%d", s.Minutes),
			s.Timestamp.Local().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

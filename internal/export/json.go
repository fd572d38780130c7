package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"focusflow/internal/store"
)

type jsonExport struct {
	ExportedAt  string        `json:"exported_at"`
	Count       int           `json:"count"`
	WorkMinutes int           `json:"work_minutes"`
	Sessions    []jsonSession `json:"sessions"`
}

type jsonSession struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Minutes   int    `json:"minutes"`
	Timestamp string `json:"timestamp"`
}

func ToJSON(sessions []store.StudySession, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(sessions),
	}

	for _, s := range sessions {
		if s.Type == store.SessionWork {
			out.WorkMinutes += s.Minutes
		}
		out.Sessions = append(out.Sessions, jsonSession{
			ID:        s.ID,
			Type:      s.Type,
			Minutes:   s.Minutes,
			Timestamp: s.Timestamp.Local().Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

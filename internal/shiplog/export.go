package shiplog

import "time"

// ExportDocument is the single structured document produced by a log
// export, suitable for saving as a file and re-importing elsewhere.
type ExportDocument struct {
	ExportedAt time.Time `json:"exported_at"`
	EntryCount int       `json:"entry_count"`
	Entries    []Entry   `json:"entries"`
}

// Export snapshots the store into an export document.
func Export(store *Store) ExportDocument {
	entries := store.List()
	return ExportDocument{
		ExportedAt: time.Now().UTC(),
		EntryCount: len(entries),
		Entries:    entries,
	}
}

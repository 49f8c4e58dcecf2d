package models

// MenuItem is a single dish on the menu. Price stays a decimal string
// because the persisted collection and the export file format carry it
// that way.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
}

// MenuBackup is the timestamped shadow copy written alongside every menu
// save and read back by the restore endpoint.
type MenuBackup struct {
	Items     []MenuItem `json:"items"`
	Timestamp int64      `json:"timestamp"`
	Version   string     `json:"version"`
}

// NextMenuItemID assigns ids as max(existing)+1, starting at 1 for an
// empty collection.
func NextMenuItemID(items []MenuItem) int {
	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID + 1
}

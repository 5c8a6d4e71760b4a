package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fitcoach/internal/shopping"
)

// ExportStore writes generated shopping lists to disk as shareable
// documents, one file per user and week.
type ExportStore struct {
	basePath string
}

// NewExportStore creates a new ExportStore and ensures the base
// directory exists.
func NewExportStore(basePath string) (*ExportStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", basePath, err)
	}
	return &ExportStore{basePath: basePath}, nil
}

// filePath returns the full path for a given user, week and extension.
func (s *ExportStore) filePath(userID, weekStart, ext string) string {
	filename := fmt.Sprintf("%s_%s.%s", userID, weekStart, ext)
	return filepath.Join(s.basePath, filename)
}

// SaveJSON stores a shopping list as a JSON document.
func (s *ExportStore) SaveJSON(userID, weekStart string, list *shopping.ShoppingList) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal shopping list: %w", err)
	}

	if err := os.WriteFile(s.filePath(userID, weekStart, "json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write shopping list file: %w", err)
	}
	return nil
}

// SaveText stores the plain-text rendering of a shopping list.
func (s *ExportStore) SaveText(userID, weekStart, text string) error {
	if err := os.WriteFile(s.filePath(userID, weekStart, "txt"), []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write shopping list text file: %w", err)
	}
	return nil
}

// LoadJSON retrieves a previously exported shopping list.
func (s *ExportStore) LoadJSON(userID, weekStart string) (*shopping.ShoppingList, error) {
	data, err := os.ReadFile(s.filePath(userID, weekStart, "json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read shopping list file: %w", err)
	}

	var list shopping.ShoppingList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shopping list: %w", err)
	}
	return &list, nil
}

// Exists checks whether an export exists for the given user and week.
func (s *ExportStore) Exists(userID, weekStart string) bool {
	_, err := os.Stat(s.filePath(userID, weekStart, "json"))
	return !os.IsNotExist(err)
}

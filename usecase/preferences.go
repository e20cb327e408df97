package usecase

import (
	"errors"
	"fmt"

	"main/model"
	"main/repository"
)

// PreferencesService stores per-user table column layouts (sizing, order,
// visibility). The browser used to keep these in localStorage; server-side
// storage makes them follow the user across devices.
type PreferencesService struct {
	PreferencesRepo *repository.PreferencesRepo
}

func (s *PreferencesService) GetLayout(userID, tableKey string) (*model.ColumnLayout, error) {
	if !model.ValidTableKey(tableKey) {
		return nil, fmt.Errorf("unknown table key %q", tableKey)
	}
	return s.PreferencesRepo.GetLayout(userID, tableKey)
}

func (s *PreferencesService) SaveLayout(userID, tableKey string, columns []model.ColumnSetting) (*model.ColumnLayout, error) {
	if !model.ValidTableKey(tableKey) {
		return nil, fmt.Errorf("unknown table key %q", tableKey)
	}
	if len(columns) == 0 {
		return nil, errors.New("at least one column setting is required")
	}

	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		if col.Key == "" {
			return nil, errors.New("column key is required")
		}
		if seen[col.Key] {
			return nil, fmt.Errorf("duplicate column key %q", col.Key)
		}
		seen[col.Key] = true
		if col.Width < 0 {
			return nil, fmt.Errorf("column %q has a negative width", col.Key)
		}
	}

	layout := &model.ColumnLayout{
		UserID:   userID,
		TableKey: tableKey,
		Columns:  columns,
	}
	if err := s.PreferencesRepo.SaveLayout(layout); err != nil {
		return nil, err
	}
	return layout, nil
}

// ResetLayout removes a saved layout so the frontend default applies again.
func (s *PreferencesService) ResetLayout(userID, tableKey string) error {
	if !model.ValidTableKey(tableKey) {
		return fmt.Errorf("unknown table key %q", tableKey)
	}
	return s.PreferencesRepo.DeleteLayout(userID, tableKey)
}

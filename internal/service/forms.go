package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"agrimoga/internal/store"
)

var (
	emptyForm   = json.RawMessage(`{}`)
	formKeyExpr = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,31}$`)
)

// FormsService stores each screen's last inputs as an opaque JSON object.
type FormsService struct {
	store *store.Store
}

func NewFormsService(st *store.Store) *FormsService {
	return &FormsService{store: st}
}

// GetForm returns the saved form, or {} when none is saved or the key is invalid.
func (s *FormsService) GetForm(ctx context.Context, key string) json.RawMessage {
	if !formKeyExpr.MatchString(key) {
		return emptyForm
	}
	return s.store.LoadRaw(ctx, store.FormPrefix+key, emptyForm)
}

// PutForm saves raw, which must be a JSON object.
func (s *FormsService) PutForm(ctx context.Context, key string, raw json.RawMessage) error {
	if !formKeyExpr.MatchString(key) {
		return fmt.Errorf("%w: form key %q", ErrInvalidInput, key)
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return fmt.Errorf("%w: form %q must be a JSON object", ErrInvalidInput, key)
	}
	s.store.SaveRaw(ctx, store.FormPrefix+key, raw)
	return nil
}

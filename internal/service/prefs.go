package service

import (
	"context"
	"fmt"

	"agrimoga/internal/i18n"
	"agrimoga/internal/store"
)

type PrefsService struct {
	store    *store.Store
	fallback i18n.Locale
}

func NewPrefsService(st *store.Store, fallback i18n.Locale) *PrefsService {
	return &PrefsService{store: st, fallback: fallback}
}

// Lang returns the saved language, or the configured default.
func (s *PrefsService) Lang(ctx context.Context) i18n.Locale {
	raw := store.Load(ctx, s.store, store.KeyLang, string(s.fallback))
	l, err := i18n.ParseLocale(raw)
	if err != nil {
		return s.fallback
	}
	return l
}

// SetLang validates and persists the language.
func (s *PrefsService) SetLang(ctx context.Context, raw string) (i18n.Locale, error) {
	l, err := i18n.ParseLocale(raw)
	if err != nil {
		return "", fmt.Errorf("set lang %q: %w", raw, err)
	}
	store.Save(ctx, s.store, store.KeyLang, string(l))
	return l, nil
}

// resolve prefers an explicit request language over the saved one.
func (s *PrefsService) resolve(ctx context.Context, raw string) i18n.Locale {
	if l, err := i18n.ParseLocale(raw); err == nil {
		return l
	}
	return s.Lang(ctx)
}

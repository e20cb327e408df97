package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"main/middleware"
	"main/model"
	"main/services"
	"main/utils"
)

// StatementsService brokers the read-side dashboard views to the core API:
// statements over a date window, listings, tags and Stripe onboarding links.
// All calculation happens in the core; this service resolves date presets,
// caches lists and forwards the caller's token.
type StatementsService struct {
	Core  *services.CoreClient
	Cache *services.ReportCache
}

// ResolveWindow turns the filter control's state into a concrete range.
// Supplying either explicit date demotes the named preset to custom, the
// same way typing in a date field does in the UI.
func (s *StatementsService) ResolveWindow(preset model.Preset, startDate, endDate string, today time.Time) (model.Preset, model.DateRange, error) {
	if startDate != "" || endDate != "" {
		if startDate == "" || endDate == "" {
			return "", model.DateRange{}, errors.New("custom ranges require both startDate and endDate")
		}
		if !utils.ValidCalendarDate(startDate) || !utils.ValidCalendarDate(endDate) {
			return "", model.DateRange{}, errors.New("dates must be in YYYY-MM-DD format")
		}
		if endDate < startDate {
			return "", model.DateRange{}, errors.New("endDate must not be before startDate")
		}
		return model.PresetCustom, model.DateRange{StartDate: startDate, EndDate: endDate}, nil
	}

	if preset == "" {
		preset = model.PresetThisMonth
	}
	if !preset.Valid() {
		return "", model.DateRange{}, fmt.Errorf("unknown date range preset %q", preset)
	}
	if preset == model.PresetCustom {
		return "", model.DateRange{}, errors.New("custom preset requires startDate and endDate")
	}
	return preset, ResolvePreset(preset, today), nil
}

// List fetches statements over the resolved window, cached per user+window.
func (s *StatementsService) List(ctx context.Context, token, userID string, rng model.DateRange) ([]model.Statement, error) {
	var statements []model.Statement
	var cacheKey string
	if s.Cache != nil {
		cacheKey = s.Cache.WindowKey(userID, "statements", rng.StartDate, rng.EndDate)
		if hit, err := s.Cache.Get(cacheKey, &statements); err == nil && hit {
			return statements, nil
		}
	}

	statements, err := s.Core.ListStatements(ctx, token, rng)
	if err != nil {
		middleware.TrackError("core_api")
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(cacheKey, statements); err != nil {
			middleware.TrackError("cache")
		}
	}
	return statements, nil
}

// PDF streams a generated statement PDF from the core.
func (s *StatementsService) PDF(ctx context.Context, token, statementID string) (io.ReadCloser, error) {
	if statementID == "" {
		return nil, errors.New("statement ID is required")
	}
	return s.Core.StatementPDF(ctx, token, statementID)
}

// Listings fetches the managed properties, cached per user.
func (s *StatementsService) Listings(ctx context.Context, token, userID string) ([]model.Listing, error) {
	var listings []model.Listing
	var cacheKey string
	if s.Cache != nil {
		cacheKey = s.Cache.Key(userID, "listings")
		if hit, err := s.Cache.Get(cacheKey, &listings); err == nil && hit {
			return listings, nil
		}
	}

	listings, err := s.Core.ListListings(ctx, token)
	if err != nil {
		middleware.TrackError("core_api")
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(cacheKey, listings); err != nil {
			middleware.TrackError("cache")
		}
	}
	return listings, nil
}

// Tags fetches the property grouping tags, cached per user.
func (s *StatementsService) Tags(ctx context.Context, token, userID string) ([]model.Tag, error) {
	var tags []model.Tag
	var cacheKey string
	if s.Cache != nil {
		cacheKey = s.Cache.Key(userID, "tags")
		if hit, err := s.Cache.Get(cacheKey, &tags); err == nil && hit {
			return tags, nil
		}
	}

	tags, err := s.Core.ListTags(ctx, token)
	if err != nil {
		middleware.TrackError("core_api")
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(cacheKey, tags); err != nil {
			middleware.TrackError("cache")
		}
	}
	return tags, nil
}

// StripeConnectLink asks the core for a fresh onboarding URL. Links are
// single-use, so there is nothing to cache.
func (s *StatementsService) StripeConnectLink(ctx context.Context, token, returnURL string) (string, error) {
	url, err := s.Core.CreateStripeConnectLink(ctx, token, returnURL)
	if err != nil {
		middleware.TrackError("core_api")
		return "", err
	}
	return url, nil
}

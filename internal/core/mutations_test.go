package core

// Validation happens before any statement is issued, so these tests
// run against a Service with no pool: reaching the store would panic,
// which is exactly what they assert never happens.

import (
	"context"
	"errors"
	"testing"
)

func validationOnlyService() *Service {
	return NewService(nil, 0)
}

func TestAddObservation_BlankCountry(t *testing.T) {
	s := validationOnlyService()

	err := s.AddObservation(context.Background(), "   ", 2025, 81.5)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "country" {
		t.Errorf("Field = %q, want country", ve.Field)
	}
}

func TestUpdateObservation_BlankCountry(t *testing.T) {
	s := validationOnlyService()

	_, err := s.UpdateObservation(context.Background(), "", 2025, 81.5)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDeleteRange_InvertedRange(t *testing.T) {
	s := validationOnlyService()

	affected, err := s.DeleteRange(context.Background(), "Japan", 2020, 2010)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "start_year" {
		t.Errorf("Field = %q, want start_year", ve.Field)
	}
	if affected != 0 {
		t.Errorf("affected = %d, want 0", affected)
	}
}

func TestDeleteRange_BlankCountry(t *testing.T) {
	s := validationOnlyService()

	_, err := s.DeleteRange(context.Background(), "  ", 2010, 2020)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestReadViews_InputValidation(t *testing.T) {
	s := validationOnlyService()
	ctx := context.Background()

	var ve *ValidationError

	if _, err := s.CountryTrend(ctx, ""); !errors.As(err, &ve) {
		t.Errorf("CountryTrend(\"\") = %v, want ValidationError", err)
	}
	if _, err := s.RegionRanking(ctx, " ", 2020); !errors.As(err, &ve) {
		t.Errorf("RegionRanking blank region = %v, want ValidationError", err)
	}
	if _, err := s.SubregionMaxima(ctx, "", 2020); !errors.As(err, &ve) {
		t.Errorf("SubregionMaxima blank region = %v, want ValidationError", err)
	}
	if _, err := s.KeywordSearch(ctx, "  "); !errors.As(err, &ve) {
		t.Errorf("KeywordSearch blank keyword = %v, want ValidationError", err)
	}
	if _, err := s.ComparisonSeries(ctx, nil); !errors.As(err, &ve) {
		t.Errorf("ComparisonSeries(nil) = %v, want ValidationError", err)
	}
}

func TestNewService_DefaultTimeout(t *testing.T) {
	s := NewService(nil, 0)
	if s.queryTimeout != DefaultQueryTimeout {
		t.Errorf("queryTimeout = %v, want %v", s.queryTimeout, DefaultQueryTimeout)
	}

	s = NewService(nil, -1)
	if s.queryTimeout != DefaultQueryTimeout {
		t.Errorf("negative timeout should fall back to default, got %v", s.queryTimeout)
	}
}

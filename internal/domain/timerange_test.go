package domain_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func yr(y int64) *int64 { return &y }

func TestCheckRangeOpenRangeRule(t *testing.T) {
	existing := []domain.Range{
		{ID: 1, Start: 2020, End: nil}, // ongoing
	}

	t.Run("second open range is rejected", func(t *testing.T) {
		err := domain.CheckRange(existing, domain.Range{Start: 2021, End: nil}, 2026)
		assert.ErrorIs(t, err, domain.ErrDuplicateOpenRange)
	})

	t.Run("closed range before the open one is accepted", func(t *testing.T) {
		err := domain.CheckRange(existing, domain.Range{Start: 2018, End: yr(2019)}, 2026)
		assert.NoError(t, err)
	})

	t.Run("editing the open range itself does not self-collide", func(t *testing.T) {
		err := domain.CheckRange(existing, domain.Range{ID: 1, Start: 2020, End: nil}, 2026)
		assert.NoError(t, err)
	})
}

func TestCheckRangeOverlapRule(t *testing.T) {
	existing := []domain.Range{
		{ID: 1, Start: 2015, End: yr(2017)},
		{ID: 2, Start: 2020, End: nil},
	}

	cases := []struct {
		name      string
		candidate domain.Range
		wantErr   error
	}{
		{"inside a closed range", domain.Range{Start: 2016, End: yr(2016)}, domain.ErrRangeOverlap},
		{"touching a closed range end", domain.Range{Start: 2017, End: yr(2018)}, domain.ErrRangeOverlap},
		{"starting before an open range now", domain.Range{Start: 2021, End: yr(2022)}, domain.ErrRangeOverlap},
		{"gap between ranges", domain.Range{Start: 2018, End: yr(2019)}, nil},
		{"entirely before everything", domain.Range{Start: 2010, End: yr(2012)}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.CheckRange(existing, tc.candidate, 2026)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestCheckRangeOpenCandidateExtendsToNow(t *testing.T) {
	existing := []domain.Range{
		{ID: 1, Start: 2024, End: yr(2025)},
	}

	// Open candidate starting before the existing range runs through "now"
	// and must collide.
	err := domain.CheckRange(existing, domain.Range{Start: 2023, End: nil}, 2026)
	assert.ErrorIs(t, err, domain.ErrRangeOverlap)

	// Open candidate starting after every closed range is fine.
	err = domain.CheckRange(existing, domain.Range{Start: 2026, End: nil}, 2026)
	assert.NoError(t, err)
}

func TestCheckRangeEmptyHistory(t *testing.T) {
	assert.NoError(t, domain.CheckRange(nil, domain.Range{Start: 2020, End: nil}, 2026))
}

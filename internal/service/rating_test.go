package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"faceit-stats/internal/api"
	"faceit-stats/internal/constants"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingService_EloDelta(t *testing.T) {
	logger := zerolog.New(io.Discard)

	cases := []struct {
		name      string
		historyFn func(playerID, game string, offset, limit int) (*api.HistoryResponse, error)
		want      *int
	}{
		{
			name: "fetch failure is absent",
			historyFn: func(string, string, int, int) (*api.HistoryResponse, error) {
				return nil, errors.New("upstream down")
			},
			want: nil,
		},
		{
			name: "short history is absent",
			historyFn: func(string, string, int, int) (*api.HistoryResponse, error) {
				return historyOf(constants.EloLookback-1, nil), nil
			},
			want: nil,
		},
		{
			name: "missing snapshot at lookback is absent",
			historyFn: func(string, string, int, int) (*api.HistoryResponse, error) {
				return historyOf(constants.EloLookback, map[int]int{0: 1790}), nil
			},
			want: nil,
		},
		{
			name: "delta is current minus past",
			historyFn: func(string, string, int, int) (*api.HistoryResponse, error) {
				return historyOf(constants.EloLookback, map[int]int{constants.EloLookback - 1: 1750}), nil
			},
			want: intPtr(50),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeFaceit{historyFn: tc.historyFn}
			svc := NewRatingService(fake, logger)

			got := svc.EloDelta(context.Background(), "player-1", 1800)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}

func TestRatingService_EloDelta_RequestsFullWindow(t *testing.T) {
	var gotLimit, gotOffset int
	fake := &fakeFaceit{
		historyFn: func(_, _ string, offset, limit int) (*api.HistoryResponse, error) {
			gotOffset, gotLimit = offset, limit
			return historyOf(constants.EloLookback, nil), nil
		},
	}
	svc := NewRatingService(fake, zerolog.New(io.Discard))

	svc.EloDelta(context.Background(), "player-1", 1800)
	assert.Equal(t, 0, gotOffset)
	assert.Equal(t, constants.EloLookback, gotLimit)
}

func intPtr(v int) *int { return &v }

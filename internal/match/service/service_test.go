package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/apperr"
	"github.com/festy23/matchday/internal/database/dbtest"
	fieldModel "github.com/festy23/matchday/internal/field/model"
	fieldRepository "github.com/festy23/matchday/internal/field/repository"
	matchModel "github.com/festy23/matchday/internal/match/model"
	"github.com/festy23/matchday/internal/match/repository"
	teamModel "github.com/festy23/matchday/internal/team/model"
	teamRepository "github.com/festy23/matchday/internal/team/repository"
)

var kickoff = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) Service {
	t.Helper()
	ctx := context.Background()
	db := dbtest.New(t)
	logger := zap.NewNop().Sugar()
	for _, id := range []string{"c1", "c2", "c3", "nobody"} {
		dbtest.CreateUser(t, db, id, id)
	}

	teams := teamRepository.New(db, logger)
	for teamID, coach := range map[string]string{"t1": "c1", "t2": "c2", "t3": "c3"} {
		team := &teamModel.Team{ID: teamID, Name: "Team " + coach, Gender: teamModel.GenderMixed, CoachID: coach}
		require.NoError(t, teams.Create(ctx, team))
	}

	fields := fieldRepository.New(db, logger)
	require.NoError(t, fields.Create(ctx, &fieldModel.Field{ID: "f1", Name: "Elland Road", Length: 100, Width: 60}, "nobody", nil))
	require.NoError(t, fields.Create(ctx, &fieldModel.Field{ID: "f2", Name: "Valley Parade", Length: 90, Width: 50}, "nobody", nil))

	return New(repository.New(db, logger), teams, fields, logger)
}

func createMatch(t *testing.T, svc Service) *matchModel.MatchResponse {
	t.Helper()
	match, err := svc.CreateMatch(context.Background(), "c1", &matchModel.CreateMatchRequest{
		AwayTeam: "t2",
		Field:    "f1",
		Start:    kickoff,
		End:      kickoff.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	return match
}

func timePtr(v time.Time) *time.Time { return &v }
func strPtr(s string) *string { return &s }

func TestService_CreateMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves references", func(t *testing.T) {
		svc := newTestService(t)
		match := createMatch(t, svc)

		assert.Equal(t, "c1", match.Organizer.ID)
		assert.Equal(t, "t1", match.HomeTeam.ID)
		assert.Equal(t, "t2", match.AwayTeam.ID)
		assert.Equal(t, "f1", match.Field.ID)
		assert.True(t, match.Start.Equal(kickoff))
	})

	tests := []struct {
		name    string
		actorID string
		req     matchModel.CreateMatchRequest
		wantErr error
	}{
		{
			name:    "unauthenticated",
			req:     matchModel.CreateMatchRequest{AwayTeam: "t2", Field: "f1", Start: kickoff, End: kickoff.Add(time.Hour)},
			wantErr: apperr.ErrUnauthenticated,
		},
		{
			name:    "start equals end",
			actorID: "c1",
			req:     matchModel.CreateMatchRequest{AwayTeam: "t2", Field: "f1", Start: kickoff, End: kickoff},
			wantErr: matchModel.ErrInvalidInterval,
		},
		{
			name:    "caller coaches no team",
			actorID: "nobody",
			req:     matchModel.CreateMatchRequest{AwayTeam: "t2", Field: "f1", Start: kickoff, End: kickoff.Add(time.Hour)},
			wantErr: teamModel.ErrNoCoachedTeam,
		},
		{
			name:    "unknown away team",
			actorID: "c1",
			req:     matchModel.CreateMatchRequest{AwayTeam: "ghost", Field: "f1", Start: kickoff, End: kickoff.Add(time.Hour)},
			wantErr: teamModel.ErrTeamNotFound,
		},
		{
			name:    "unknown field",
			actorID: "c1",
			req:     matchModel.CreateMatchRequest{AwayTeam: "t2", Field: "ghost", Start: kickoff, End: kickoff.Add(time.Hour)},
			wantErr: fieldModel.ErrFieldNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			_, err := svc.CreateMatch(ctx, tt.actorID, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_UpdateMatch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	match := createMatch(t, svc)

	t.Run("only home coach", func(t *testing.T) {
		_, err := svc.UpdateMatch(ctx, "c2", match.ID, &matchModel.UpdateMatchRequest{Field: strPtr("f2")})
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("merged interval checked", func(t *testing.T) {
		_, err := svc.UpdateMatch(ctx, "c1", match.ID, &matchModel.UpdateMatchRequest{Start: timePtr(kickoff.Add(3 * time.Hour))})
		assert.ErrorIs(t, err, matchModel.ErrInvalidInterval)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := svc.UpdateMatch(ctx, "c1", match.ID, &matchModel.UpdateMatchRequest{Field: strPtr("ghost")})
		assert.ErrorIs(t, err, fieldModel.ErrFieldNotFound)
	})

	t.Run("partial update", func(t *testing.T) {
		got, err := svc.UpdateMatch(ctx, "c1", match.ID, &matchModel.UpdateMatchRequest{
			AwayTeam: strPtr("t3"),
			End:      timePtr(kickoff.Add(90 * time.Minute)),
		})
		require.NoError(t, err)
		assert.Equal(t, "t3", got.AwayTeam.ID)
		assert.Equal(t, "f1", got.Field.ID)
		assert.True(t, got.Start.Equal(kickoff))
		assert.True(t, got.End.Equal(kickoff.Add(90*time.Minute)))
	})

	t.Run("missing match", func(t *testing.T) {
		_, err := svc.UpdateMatch(ctx, "c1", "ghost", &matchModel.UpdateMatchRequest{})
		assert.ErrorIs(t, err, matchModel.ErrMatchNotFound)
	})
}

func TestService_DeleteMatch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	match := createMatch(t, svc)

	assert.ErrorIs(t, svc.DeleteMatch(ctx, "c2", match.ID), apperr.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteMatch(ctx, "", match.ID), apperr.ErrUnauthenticated)
	require.NoError(t, svc.DeleteMatch(ctx, "c1", match.ID))

	matches, err := svc.ListMatches(ctx)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

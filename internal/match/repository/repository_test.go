package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/database/dbtest"
	fieldModel "github.com/festy23/matchday/internal/field/model"
	fieldRepository "github.com/festy23/matchday/internal/field/repository"
	matchModel "github.com/festy23/matchday/internal/match/model"
	teamModel "github.com/festy23/matchday/internal/team/model"
	teamRepository "github.com/festy23/matchday/internal/team/repository"
)

var kickoff = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func setup(t *testing.T) Repository {
	t.Helper()
	ctx := context.Background()
	db := dbtest.New(t)
	logger := zap.NewNop().Sugar()
	for _, id := range []string{"c1", "c2", "p1"} {
		dbtest.CreateUser(t, db, id, id)
	}

	teams := teamRepository.New(db, logger)
	require.NoError(t, teams.Create(ctx, &teamModel.Team{ID: "t1", Name: "Rovers", Gender: teamModel.GenderMen, CoachID: "c1"}))
	require.NoError(t, teams.Create(ctx, &teamModel.Team{ID: "t2", Name: "United", Gender: teamModel.GenderMen, CoachID: "c2"}))
	require.NoError(t, teams.AddMember(ctx, "t1", "p1", teamModel.RolePlayer))

	fields := fieldRepository.New(db, logger)
	require.NoError(t, fields.Create(ctx, &fieldModel.Field{ID: "f1", Name: "Elland Road", Length: 100, Width: 60}, "c1", []string{"showers"}))

	return New(db, logger)
}

func newMatch(id string, start time.Time) *matchModel.Match {
	return &matchModel.Match{
		ID:          id,
		OrganizerID: "c1",
		HomeTeamID:  "t1",
		AwayTeamID:  "t2",
		FieldID:     "f1",
		Start:       start,
		End:         start.Add(2 * time.Hour),
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := setup(t)
	require.NoError(t, repo.Create(ctx, newMatch("m1", kickoff)))

	got, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	require.NotNil(t, got.Organizer)
	require.NotNil(t, got.HomeTeam)
	require.NotNil(t, got.AwayTeam)
	require.NotNil(t, got.Field)
	assert.Equal(t, "c1", got.HomeTeam.Coach.ID)
	require.Len(t, got.HomeTeam.Members, 1)
	assert.Equal(t, "p1", got.HomeTeam.Members[0].User.ID)
	assert.Equal(t, []string{"showers"}, got.Field.FacilityNames())
	assert.Equal(t, []string{"c1"}, got.Owners())
	assert.True(t, got.Start.Equal(kickoff))
}

func TestRepository_Create_UnknownReference(t *testing.T) {
	repo := setup(t)
	m := newMatch("m1", kickoff)
	m.FieldID = "ghost"
	assert.ErrorIs(t, repo.Create(context.Background(), m), matchModel.ErrReferenceChanged)
}

func TestRepository_List_OrderedByStart(t *testing.T) {
	ctx := context.Background()
	repo := setup(t)
	require.NoError(t, repo.Create(ctx, newMatch("late", kickoff.Add(48*time.Hour))))
	require.NoError(t, repo.Create(ctx, newMatch("early", kickoff)))

	matches, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "early", matches[0].ID)
	assert.Equal(t, "late", matches[1].ID)
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := setup(t)
	require.NoError(t, repo.Create(ctx, newMatch("m1", kickoff)))

	later := kickoff.Add(5 * time.Hour)
	require.NoError(t, repo.Update(ctx, "m1", map[string]interface{}{"end_at": later}))
	got, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, got.End.Equal(later))

	assert.ErrorIs(t, repo.Update(ctx, "ghost", map[string]interface{}{"end_at": later}), matchModel.ErrMatchNotFound)

	require.NoError(t, repo.Delete(ctx, "m1"))
	_, err = repo.GetByID(ctx, "m1")
	assert.ErrorIs(t, err, matchModel.ErrMatchNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "m1"), matchModel.ErrMatchNotFound)
}

package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/logi101/eventflow-seating/internal/seating"
)

func TestParticipantRepo_ListForSeating(t *testing.T) {
	mock, _, repo, _ := newMock(t)
	mock.ExpectQuery("FROM participants").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "is_vip", "companion_id", "networking_opt_in"}).
			AddRow("p1", "Dana", "Levi", true, "p2", true).
			AddRow("p2", "Noa", "Levi", false, nil, true).
			AddRow("p3", "Avi", "Cohen", false, nil, false))
	mock.ExpectQuery("FROM participant_tracks").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"participant_id", "track_id"}).
			AddRow("p1", "t-ai").
			AddRow("p1", "t-cloud").
			AddRow("p3", "t-ai").
			AddRow("ghost", "t-x"))

	got, err := repo.ListForSeating(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, seating.ParticipantID("p2"), got[0].CompanionID)
	require.Equal(t, []seating.InterestID{"t-ai", "t-cloud"}, got[0].InterestTags)
	require.Empty(t, got[1].InterestTags)
	require.Equal(t, seating.ParticipantID(""), got[1].CompanionID)
	require.False(t, got[2].NetworkingOptIn)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepo_ListForSeating_NoParticipantsSkipsTracks(t *testing.T) {
	mock, _, repo, _ := newMock(t)
	mock.ExpectQuery("FROM participants").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "is_vip", "companion_id", "networking_opt_in"}))

	got, err := repo.ListForSeating(context.Background(), "e1")
	require.NoError(t, err)
	require.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

package backloggery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusQueryPair(t *testing.T) {
	table := []struct {
		status   Status
		value    string
		unplayed string
	}{
		{status: StatusAny, value: "", unplayed: ""},
		{status: StatusUnplayed, value: "", unplayed: "1"},
		{status: StatusUnfinished, value: "1", unplayed: "0"},
		{status: StatusBeaten, value: "2", unplayed: ""},
		{status: StatusCompleted, value: "3", unplayed: ""},
		{status: StatusMastered, value: "4", unplayed: ""},
		{status: StatusNull, value: "5", unplayed: ""},
	}

	for _, row := range table {
		value, unplayed := row.status.QueryPair()
		require.Equal(t, row.value, value, row.status.String())
		require.Equal(t, row.unplayed, unplayed, row.status.String())
	}
}

func TestStatusIconRoundTrip(t *testing.T) {
	for _, status := range Statuses {
		parsed, err := StatusFromIcon(status.Icon())
		require.NoError(t, err)
		require.Equal(t, status, parsed)

		named, err := ParseStatus(status.String())
		require.NoError(t, err)
		require.Equal(t, status, named)
	}
}

func TestStatusFromUnknownIcon(t *testing.T) {
	for _, icon := range []string{"", "(X)", "(b)", "B"} {
		_, err := StatusFromIcon(icon)
		require.ErrorIs(t, err, ErrUnknownStatus)
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus(" Beaten ")
	require.NoError(t, err)
	require.Equal(t, StatusBeaten, status)

	status, err = ParseStatus("")
	require.NoError(t, err)
	require.Equal(t, StatusAny, status)

	_, err = ParseStatus("finished")
	require.ErrorIs(t, err, ErrUnknownStatus)
}

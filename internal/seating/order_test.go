package seating

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ids(ps []Participant) []ParticipantID {
	out := make([]ParticipantID, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestSortByPriority(t *testing.T) {
	t.Run("VIPs first then more tags", func(t *testing.T) {
		in := []Participant{
			participant("plain", false),
			participant("tagged", false, "A", "B"),
			participant("vip", true),
			participant("vip-tagged", true, "A"),
			participant("one-tag", false, "C"),
		}

		got := SortByPriority(in)

		require.Equal(t, []ParticipantID{"vip-tagged", "vip", "tagged", "one-tag", "plain"}, ids(got))
		require.Equal(t, ParticipantID("plain"), in[0].ID, "input must not be reordered")
	})

	t.Run("ties keep input order", func(t *testing.T) {
		in := []Participant{
			participant("c", false, "X"),
			participant("a", false, "Y"),
			participant("b", false, "Z"),
		}

		require.Equal(t, []ParticipantID{"c", "a", "b"}, ids(SortByPriority(in)))
	})
}

func TestFilterOptedIn(t *testing.T) {
	out := participant("out", false)
	out.NetworkingOptIn = false

	got := FilterOptedIn([]Participant{participant("a", false), out, participant("b", true)})

	require.Equal(t, []ParticipantID{"a", "b"}, ids(got))
}

func TestSelectTable(t *testing.T) {
	newTable := func(n TableNumber, capacity int, occupants ...Participant) *table {
		tbl := &table{number: n, capacity: capacity}
		for _, o := range occupants {
			tbl.seat(unit{members: []Participant{o}})
		}
		return tbl
	}
	c := testConstraints(4)

	t.Run("no tables", func(t *testing.T) {
		require.Nil(t, selectTable(nil, unit{members: []Participant{participant("p", false)}}, c))
	})

	t.Run("lower table wins ties", func(t *testing.T) {
		tables := []*table{
			newTable(1, 4, participant("a", false, "X")),
			newTable(2, 4, participant("b", false, "X")),
		}

		got := selectTable(tables, unit{members: []Participant{participant("p", false, "X")}}, c)

		require.Equal(t, TableNumber(1), got.number)
	})

	t.Run("higher score wins", func(t *testing.T) {
		tables := []*table{
			newTable(1, 4, participant("a", false, "Y")),
			newTable(2, 4, participant("b", false, "X")),
		}

		got := selectTable(tables, unit{members: []Participant{participant("p", false, "X")}}, c)

		require.Equal(t, TableNumber(2), got.number)
	})

	t.Run("full tables are rejected", func(t *testing.T) {
		tables := []*table{newTable(1, 1, participant("a", false, "X"))}

		require.Nil(t, selectTable(tables, unit{members: []Participant{participant("p", false, "X")}}, c))
	})

	t.Run("pair needs two free seats", func(t *testing.T) {
		tables := []*table{newTable(1, 2, participant("a", false))}
		pair := unit{members: []Participant{participant("p", false), participant("q", false)}}

		require.Nil(t, selectTable(tables, pair, c))
	})

	t.Run("VIP cap rejects only when spread is on", func(t *testing.T) {
		tables := []*table{newTable(1, 8, participant("v1", true), participant("v2", true))}
		vip := unit{members: []Participant{participant("v3", true)}}

		require.Nil(t, selectTable(tables, vip, c))

		off := c
		off.VIPSpread = false
		require.NotNil(t, selectTable(tables, vip, off))
		require.NotNil(t, selectTable(tables, unit{members: []Participant{participant("r", false)}}, c))
	})

	t.Run("VIP companion counts against the cap", func(t *testing.T) {
		tables := []*table{
			newTable(1, 8, participant("v1", true), participant("v2", true)),
			newTable(2, 8, participant("v3", true)),
		}
		pair := unit{members: []Participant{participant("p", false), participant("vc", true)}}

		got := selectTable(tables, pair, c)

		require.NotNil(t, got)
		require.Equal(t, TableNumber(2), got.number)

		got.seat(pair)
		require.Equal(t, VIPSpreadCap, got.vips)
		require.Nil(t, selectTable(tables, unit{members: []Participant{participant("q", false), participant("vd", true)}}, c))
	})
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blogem/dues-ledger/models"
)

func TestNormalizeField(t *testing.T) {
	member := roster([]string{"Chris", "Lee", "chris@example.com", "100", "40"})[0]

	cases := []struct {
		label string
		want  string
		ok    bool
	}{
		{"email", "Email", true},
		{"  DUES PAYED ", "Dues Payed", true},
		{"first name", "First Name", true},
		{"emall", "", false},
		{"dues", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeField(tc.label, member)
		assert.Equal(t, tc.ok, ok, tc.label)
		assert.Equal(t, tc.want, got, tc.label)
	}
}

func TestNormalizeFieldFirstKeyWins(t *testing.T) {
	member := models.NewMember(2, []string{"Phone", "PHONE"}, []string{"1", "2"})
	got, ok := NormalizeField("phone", member)
	assert.True(t, ok)
	assert.Equal(t, "Phone", got)
}

func TestFindMember(t *testing.T) {
	members := roster(
		[]string{"Chris", "Lee", "", "100", "40"},
		[]string{"Lee", "Park", "", "100", "0"},
		[]string{"Christopher", "Stone", "", "100", "100"},
		[]string{"Al", "Chrisman", "", "100", "0"},
	)

	cases := []struct {
		query   string
		wantRow int
	}{
		{"chris", 2},
		{"  CHRIS LEE ", 2},
		{"lee", 2}, // "chris lee" contains "lee" before Lee Park is reached
		{"park", 3},
		{"christopher", 4},
		{"stone", 4},
		{"al", 5},
		{"s l", 2},
	}

	for _, tc := range cases {
		got, ok := FindMember(members, tc.query)
		if assert.True(t, ok, tc.query) {
			assert.Equal(t, tc.wantRow, got.Row, tc.query)
		}
	}
}

func TestFindMemberNotFound(t *testing.T) {
	members := roster([]string{"Chris", "Lee", "", "100", "40"})

	for _, query := range []string{"dana", "chris leee"} {
		_, ok := FindMember(members, query)
		assert.False(t, ok, query)
	}

	_, ok := FindMember(nil, "chris")
	assert.False(t, ok)
}

func TestFindMemberLastNameOnly(t *testing.T) {
	members := roster(
		[]string{"Jo", "Smith", "", "1", "0"},
		[]string{"Sam", "Ross", "", "1", "0"},
	)

	got, ok := FindMember(members, "ROSS")
	assert.True(t, ok)
	assert.Equal(t, 3, got.Row)
}

func TestFindMemberIsFirstInStorageOrder(t *testing.T) {
	members := roster(
		[]string{"Sam", "Ortiz", "", "1", "0"},
		[]string{"Sam", "Berg", "", "1", "0"},
	)

	for i := 0; i < 5; i++ {
		got, ok := FindMember(members, "sam")
		assert.True(t, ok)
		assert.Equal(t, "Ortiz", got.LastName())
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Chris", displayName("chris"))
	assert.Equal(t, "Chris Lee", displayName(" CHRIS lee "))
}

func TestFindMemberBlankQueryIsFirstRow(t *testing.T) {
	members := roster(
		[]string{"Chris", "Lee", "", "100", "40"},
		[]string{"Dana", "Park", "", "100", "100"},
	)

	for _, query := range []string{"", "   "} {
		got, ok := FindMember(members, query)
		if assert.True(t, ok, "%q", query) {
			assert.Equal(t, 2, got.Row)
		}
	}

	_, ok := FindMember(nil, "")
	assert.False(t, ok)
}

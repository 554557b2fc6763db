package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		raw  string

		wantSurname string
		wantGiven   []string
		wantFull    string
	}{
		{
			name: "one given name", raw: "John Doe",
			wantSurname: "Doe", wantGiven: []string{"John"}, wantFull: "John Doe",
		},
		{
			name: "two given names", raw: "John Michael Doe",
			wantSurname: "Doe", wantGiven: []string{"John", "Michael"}, wantFull: "John Michael Doe",
		},
		{
			name: "three given names", raw: "Hunter Uriah Mathew Clarke",
			wantSurname: "Clarke", wantGiven: []string{"Hunter", "Uriah", "Mathew"},
			wantFull: "Hunter Uriah Mathew Clarke",
		},
		{
			name: "surrounding whitespace trimmed", raw: "   Janet Parsons  ",
			wantSurname: "Parsons", wantGiven: []string{"Janet"}, wantFull: "Janet Parsons",
		},
		{
			name: "internal whitespace runs collapsed", raw: "Adonis   Julius \t Archer",
			wantSurname: "Archer", wantGiven: []string{"Adonis", "Julius"}, wantFull: "Adonis Julius Archer",
		},
		{
			name: "punctuation kept inside tokens", raw: "Jean-Pierre O'Connor",
			wantSurname: "O'Connor", wantGiven: []string{"Jean-Pierre"}, wantFull: "Jean-Pierre O'Connor",
		},
		{
			name: "diacritics preserved", raw: "Björk Guðmundsdóttir",
			wantSurname: "Guðmundsdóttir", wantGiven: []string{"Björk"}, wantFull: "Björk Guðmundsdóttir",
		},
		{
			name: "case and digits preserved", raw: "person1 lastName1",
			wantSurname: "lastName1", wantGiven: []string{"person1"}, wantFull: "person1 lastName1",
		},
		{
			name: "repeated tokens kept", raw: "Ann Ann Ann",
			wantSurname: "Ann", wantGiven: []string{"Ann", "Ann"}, wantFull: "Ann Ann Ann",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSurname, got.Surname())
			assert.Equal(t, tc.wantGiven, got.GivenNames())
			assert.Equal(t, tc.wantFull, got.FullName())
			assert.Equal(t, tc.wantFull, got.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"empty", "", ErrEmptyInput},
		{"spaces only", "   ", ErrEmptyInput},
		{"tabs and newlines only", "\t\n ", ErrEmptyInput},
		{"surname only", "John", ErrMissingGivenName},
		{"surname only padded", "  John  ", ErrMissingGivenName},
		{"four given names", "A B C D E", ErrTooManyGivenNames},
		{"many given names", "A B C D E F G", ErrTooManyGivenNames},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, Name{}, got)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.raw, pe.Input)
		})
	}
}

func TestParse_ErrorMessages(t *testing.T) {
	_, err := Parse("A B C D E")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A B C D E")
	assert.Contains(t, err.Error(), "more than 3 given names")

	_, err = Parse("John")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "given name(s) not provided")
}

func TestParse_BoundaryArity(t *testing.T) {
	_, err := Parse("A B C D")
	require.NoError(t, err, "three given names plus surname is the maximum")

	_, err = Parse("A B")
	require.NoError(t, err, "one given name plus surname is the minimum")
}

func TestName_GivenName(t *testing.T) {
	n, err := Parse("John Michael Doe")
	require.NoError(t, err)

	g, ok := n.GivenName(0)
	assert.True(t, ok)
	assert.Equal(t, "John", g)

	g, ok = n.GivenName(1)
	assert.True(t, ok)
	assert.Equal(t, "Michael", g)

	_, ok = n.GivenName(2)
	assert.False(t, ok)
	_, ok = n.GivenName(-1)
	assert.False(t, ok)
}

func TestName_GivenNamesIsACopy(t *testing.T) {
	n, err := Parse("John Michael Doe")
	require.NoError(t, err)

	given := n.GivenNames()
	given[0] = "Mutated"
	assert.Equal(t, "John Michael Doe", n.FullName())
}

func TestName_Comparable(t *testing.T) {
	a, err := Parse("John  Doe")
	require.NoError(t, err)
	b, err := Parse("John Doe")
	require.NoError(t, err)
	assert.True(t, a == b)
}

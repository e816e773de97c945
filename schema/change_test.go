package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChangeEvent(t *testing.T) {
	e, err := ParseChangeEvent(`{"table":"cases","op":"UPDATE"}`)
	assert.NoError(t, err)
	assert.Equal(t, ChangeEvent{Table: CaseTable, Op: "UPDATE"}, e)
	assert.Equal(t, `{"table":"cases","op":"UPDATE"}`, e.Payload())

	_, err = ParseChangeEvent(`{"table":"accounts","op":"INSERT"}`)
	assert.True(t, errors.Is(err, ErrUnknownTable))

	_, err = ParseChangeEvent(`{"op":"INSERT"}`)
	assert.True(t, errors.Is(err, ErrUnknownTable))

	_, err = ParseChangeEvent(`cases`)
	assert.Error(t, err)
}

func TestChangeEventAffects(t *testing.T) {
	tables := []string{CaseTable, EstablishmentTable}

	assert.True(t, ChangeEvent{Table: CaseTable}.Affects(tables))
	assert.False(t, ChangeEvent{Table: AlertTable}.Affects(tables))
	assert.True(t, ChangeEvent{}.Affects(tables))
	assert.True(t, ChangeEvent{}.IsResync())
}

func TestEstablishmentLocation(t *testing.T) {
	lat, lng := 30.1, -97.2

	_, ok := Establishment{Latitude: &lat}.Location()
	assert.False(t, ok)

	l, ok := Establishment{Latitude: &lat, Longitude: &lng}.Location()
	assert.True(t, ok)
	assert.Equal(t, Location{Latitude: lat, Longitude: lng}, *l)
}

package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTally(t *testing.T) {
	votes := []*Vote{
		{ID: 1, EmployeeID: 10, MenuID: 7, Points: 3},
		{ID: 2, EmployeeID: 10, MenuID: 5, Points: 2},
		{ID: 3, EmployeeID: 11, MenuID: 7, Points: 1},
	}

	results := Tally(votes)
	require.Len(t, results.Menus, 2)

	assert.Equal(t, int64(7), results.Menus[0].MenuID)
	assert.Equal(t, 4, results.Menus[0].Points)
	assert.Equal(t, []EmployeePoints{{EmployeeID: 10, Points: 3}, {EmployeeID: 11, Points: 1}}, results.Menus[0].Votes)

	five, ok := results.Get(5)
	require.True(t, ok)
	assert.Equal(t, 2, five.Points)

	_, ok = results.Get(99)
	assert.False(t, ok)
}

func TestTally_Empty(t *testing.T) {
	results := Tally(nil)
	assert.Empty(t, results.Menus)

	out, err := json.Marshal(results)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))
}

func TestDailyResults_MarshalKeepsOrder(t *testing.T) {
	results := Tally([]*Vote{
		{ID: 1, EmployeeID: 1, MenuID: 9, Points: 1},
		{ID: 2, EmployeeID: 2, MenuID: 3, Points: 2},
	})

	out, err := json.Marshal(results)
	require.NoError(t, err)

	want := `{"9":{"menu_id":9,"points":1,"votes":[{"employee_id":1,"points":1}]},` +
		`"3":{"menu_id":3,"points":2,"votes":[{"employee_id":2,"points":2}]}}`
	assert.Equal(t, want, string(out))
}

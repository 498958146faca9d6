package records

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_AcceptsFormInput(t *testing.T) {
	cases := map[string]Number{
		`12.5`:   NewNumber(12.5),
		`"12.5"`: NewNumber(12.5),
		`""`:     {},
		`null`:   {},
		`" 7 "`:  NewNumber(7),
	}
	for in, want := range cases {
		var got Number
		require.NoError(t, json.Unmarshal([]byte(in), &got), in)
		assert.Equal(t, want, got, in)
	}

	var n Number
	assert.ErrorIs(t, json.Unmarshal([]byte(`"abc"`), &n), ErrInvalidInput)
	assert.ErrorIs(t, json.Unmarshal([]byte(`"NaN"`), &n), ErrInvalidInput)
}

func TestNumber_NeverStoresNaN(t *testing.T) {
	assert.False(t, NewNumber(math.NaN()).Valid)
	b, err := json.Marshal(struct {
		W Number `json:"w"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"w":null}`, string(b))
}

func TestDate_ParseAndMarshal(t *testing.T) {
	d, err := ParseDate("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", d.String())

	d, err = ParseDate("2026-03-01T23:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", d.String())

	d, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseDate("01/03/2026")
	assert.ErrorIs(t, err, ErrInvalidInput)

	b, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Dog{}.Validate(), ErrInvalidInput)
	assert.NoError(t, Dog{Name: "Rex"}.Validate())
	assert.ErrorIs(t, Dog{Name: "Rex", Gender: "Other"}.Validate(), ErrInvalidInput)

	assert.ErrorIs(t, Medication{Name: "A", Frequency: "Hourly"}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, WeightLog{Date: NewDate(2026, 1, 1)}.Validate(), ErrInvalidInput)
	assert.NoError(t, WeightLog{Weight: NewNumber(3), Date: NewDate(2026, 1, 1), Unit: UnitLbs}.Validate())
	assert.ErrorIs(t, FoodLog{Date: NewDate(2026, 1, 1), FoodType: "Kibble"}.Validate(), ErrInvalidInput)
	assert.NoError(t, FoodLog{Date: NewDate(2026, 1, 1), FoodType: FoodDry, MealTime: MealSnack}.Validate())
	assert.ErrorIs(t, TherapySession{Date: NewDate(2026, 1, 1)}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, ReminderContact{Email: "nope"}.Validate(), ErrInvalidInput)
	assert.NoError(t, ReminderContact{Phone: "+34600000000"}.Validate())
}

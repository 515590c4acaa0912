package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Set
	}{
		{name: "strings", body: `{"reps":"10","weight":"20"}`, want: Set{Reps: "10", Weight: "20"}},
		{name: "numbers", body: `{"reps":10,"weight":22.5}`, want: Set{Reps: "10", Weight: "22.5"}},
		{name: "mixed", body: `{"reps":8,"weight":"60"}`, want: Set{Reps: "8", Weight: "60"}},
		{name: "null and missing", body: `{"reps":null}`, want: Set{}},
		{name: "text kept as entered", body: `{"reps":" 5 ","weight":"heavy"}`, want: Set{Reps: " 5 ", Weight: "heavy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Set
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetUnmarshalJSON_RejectsOtherTypes(t *testing.T) {
	for _, body := range []string{`{"reps":true,"weight":"1"}`, `{"reps":"1","weight":[1]}`, `[]`} {
		var s Set
		assert.Error(t, json.Unmarshal([]byte(body), &s), body)
	}
}

func TestSetUnmarshalJSON_InSession(t *testing.T) {
	var session WorkoutSession
	require.NoError(t, json.Unmarshal([]byte(`{"exerciseName":"Squat","sets":[{"reps":5,"weight":100},{"reps":"3","weight":"110"}]}`), &session))
	assert.Equal(t, []Set{{Reps: "5", Weight: "100"}, {Reps: "3", Weight: "110"}}, session.Sets)
}

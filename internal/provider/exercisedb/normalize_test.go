package exercisedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeShapes(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		shape Shape
		count int
	}{
		{"array", `[{"id":"1","name":"squat"}]`, ShapeArray, 1},
		{"results", `{"results":[{"id":"1"},{"id":"2"}]}`, ShapeResults, 2},
		{"data", `{"success":true,"data":[{"exerciseId":"x"}]}`, ShapeData, 1},
		{"results preferred over data", `{"results":[{"id":"1"}],"data":[{"id":"2"},{"id":"3"}]}`, ShapeResults, 1},
		{"results not a list falls to data", `{"results":"oops","data":[{"id":"2"}]}`, ShapeData, 1},
		{"empty array", `[]`, ShapeArray, 0},
		{"object without list", `{"message":"You are not subscribed"}`, ShapeUnrecognized, 0},
		{"null", `null`, ShapeUnrecognized, 0},
		{"garbage", `<html>oops</html>`, ShapeUnrecognized, 0},
		{"non-object items skipped", `[1,"two",{"id":"3"}]`, ShapeArray, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exercises, shape := Normalize([]byte(tt.body))
			assert.Equal(t, tt.shape, shape)
			assert.Len(t, exercises, tt.count)
		})
	}
}

func TestNormalizeItemFields(t *testing.T) {
	body := `[
		{"exerciseId":"ex-1","id":"ignored","name":"barbell bench press","bodyParts":["upper arms"],"bodyPart":"chest","gifUrl":"https://g/1.gif","imageUrl":"https://i/1.png","targetMuscles":["pectorals"],"target":"chest"},
		{"id":42,"name":"air bike","bodyPart":"waist","gifUrl":"https://g/2.gif","target":"abs"},
		{"_id":"mongo-3"},
		{"name":"plank","bodyParts":[]}
	]`

	exercises, shape := Normalize([]byte(body))
	require.Equal(t, ShapeArray, shape)
	require.Len(t, exercises, 4)

	first := exercises[0]
	assert.Equal(t, "ex-1", first.ID)
	assert.Equal(t, "Barbell bench press", first.Name)
	assert.Equal(t, "Upper Arms", first.Muscle)
	require.NotNil(t, first.Image)
	assert.Equal(t, "https://i/1.png", *first.Image)
	assert.Equal(t, "pectorals", first.Target)

	second := exercises[1]
	assert.Equal(t, "42", second.ID)
	assert.Equal(t, "Air bike", second.Name)
	assert.Equal(t, "Waist", second.Muscle)
	assert.Equal(t, "https://g/2.gif", *second.Image)
	assert.Equal(t, "abs", second.Target)

	third := exercises[2]
	assert.Equal(t, "mongo-3", third.ID)
	assert.Equal(t, "Exercise", third.Name)
	assert.Equal(t, "General", third.Muscle)
	assert.Nil(t, third.Image)
	assert.Equal(t, "Target", third.Target)

	fourth := exercises[3]
	assert.NotEmpty(t, fourth.ID)
	assert.Equal(t, "General", fourth.Muscle)
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Upper Legs", titleWords("upper legs"))
	assert.Equal(t, "Lower-Back", titleWords("lower-back"))
	assert.Equal(t, "", titleWords(""))
}

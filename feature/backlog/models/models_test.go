package models_test

import (
	"testing"

	"backlog-manager/feature/backlog/models"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "users", models.User{}.TableName())
	assert.Equal(t, "games", models.Game{}.TableName())
	assert.Equal(t, "user_games", models.UserGame{}.TableName())
}

func TestDerivePlayState(t *testing.T) {
	tests := []struct {
		name    string
		minutes int64
		want    models.PlayState
	}{
		{"Zero", 0, models.PlayStateUnplayed},
		{"OneMinute", 1, models.PlayStateUnfinished},
		{"TwoHours", 120, models.PlayStateUnfinished},
		{"Negative", -5, models.PlayStateUnplayed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.DerivePlayState(tt.minutes))
		})
	}
}

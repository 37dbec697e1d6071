package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrigins(t *testing.T) {
	cfg := Config{AllowedOrigins: " https://academy.example.com, ,http://localhost:3000 "}
	assert.Equal(t, []string{"https://academy.example.com", "http://localhost:3000"}, cfg.Origins())

	assert.Nil(t, Config{}.Origins())
}

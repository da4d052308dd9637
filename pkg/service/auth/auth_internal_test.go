package auth

import (
	"io"
	"log/slog"
	"testing"

	"github.com/autoconnect/backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDummyHash_UsesPasswordCost(t *testing.T) {
	s := New(nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	h := s.dummyHash()
	cost, err := bcrypt.Cost([]byte(h))
	require.NoError(t, err)
	assert.Equal(t, utils.PasswordCost, cost)
	assert.Equal(t, h, s.dummyHash())
}

package repository

import (
	"errors"
	"testing"

	"github.com/autoconnect/backend/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    error
		expected []error
	}{
		{
			name:     "record not found maps to ErrNotFound",
			input:    gorm.ErrRecordNotFound,
			expected: []error{domain.ErrNotFound},
		},
		{
			name:     "duplicate key maps to ErrAlreadyExists and ErrPersistence",
			input:    gorm.ErrDuplicatedKey,
			expected: []error{domain.ErrAlreadyExists, domain.ErrPersistence},
		},
		{
			name:     "wrapped duplicate key maps correctly",
			input:    errors.Join(errors.New("outer error"), gorm.ErrDuplicatedKey),
			expected: []error{domain.ErrAlreadyExists},
		},
		{
			name:     "driver error becomes ErrPersistence",
			input:    errors.New("connection refused"),
			expected: []error{domain.ErrPersistence},
		},
		{
			name:     "domain error passes through",
			input:    domain.ErrNotFound,
			expected: []error{domain.ErrNotFound},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := MapGormErrorToDomain(tt.input)
			require.Error(t, result)
			for _, want := range tt.expected {
				assert.ErrorIs(t, result, want)
			}
		})
	}

	assert.NoError(t, MapGormErrorToDomain(nil))
}

func TestMapGormErrorToDomain_KeepsDriverMessage(t *testing.T) {
	t.Parallel()
	result := MapGormErrorToDomain(errors.New("connection refused"))
	assert.Contains(t, result.Error(), "connection refused")
	assert.NotErrorIs(t, result, domain.ErrNotFound)
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, WrapError(func() error { return nil }))
	assert.ErrorIs(t, WrapError(func() error { return gorm.ErrRecordNotFound }), domain.ErrNotFound)

	defer func() {
		assert.NotNil(t, recover(), "expected panic to propagate")
	}()
	_ = WrapError(func() error { panic("test panic") })
}

func TestRequireAffected(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, RequireAffected(&gorm.DB{RowsAffected: 0}), domain.ErrNotFound)
	assert.NoError(t, RequireAffected(&gorm.DB{RowsAffected: 1}))
	assert.ErrorIs(t, RequireAffected(&gorm.DB{Error: errors.New("boom")}), domain.ErrPersistence)
}

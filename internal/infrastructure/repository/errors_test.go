package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/seyalworks/tailorshop-api/pkg/apperror"
)

func TestTranslateDuplicate(t *testing.T) {
	err := translateDuplicate(gorm.ErrDuplicatedKey, "Item ID already exists")
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
	assert.Equal(t, "Item ID already exists", appErr.Message)

	// Wrapped duplicate-key errors still translate
	wrapped := fmt.Errorf("insert bill: %w", gorm.ErrDuplicatedKey)
	assert.Equal(t, 409, apperror.GetAppError(translateDuplicate(wrapped, "taken")).Code)

	// Everything else passes through untouched
	assert.NoError(t, translateDuplicate(nil, "taken"))
	other := errors.New("connection reset")
	assert.Equal(t, other, translateDuplicate(other, "taken"))
}

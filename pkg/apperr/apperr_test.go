package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cykj40/padre-ginos-fem-sub000/pkg/apperr"
)

func TestTaxonomy(t *testing.T) {
	val := apperr.Validationf("quantity must be at least %d", 1)
	nf := apperr.NotFoundf("order %d not found", 7)
	st := apperr.Storage("cart.add", errors.New("database is locked"))

	assert.True(t, apperr.IsValidation(val))
	assert.False(t, apperr.IsValidation(nf))
	assert.True(t, apperr.IsNotFound(nf))
	assert.True(t, apperr.IsStorage(st))
	assert.False(t, apperr.IsStorage(val))

	require.Equal(t, "quantity must be at least 1", val.Error())
	require.Equal(t, "cart.add: database is locked", st.Error())
}

func TestClassificationSurvivesWrapping(t *testing.T) {
	inner := apperr.NotFoundf("cart item 3 not found")
	wrapped := fmt.Errorf("update: %w", inner)
	assert.True(t, apperr.IsNotFound(wrapped))

	cause := errors.New("connection refused")
	st := apperr.Storage("cart.get", cause)
	assert.True(t, errors.Is(st, cause))
}

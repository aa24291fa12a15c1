package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"dishly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("order", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: order 123 (cause: database connection failed)", err.Error())
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("email", errors.New("invalid format"))

		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})

	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 21, 1, 20)

		assert.Equal(t, 21, err.Value)
		assert.Equal(t, "value is out of range: quantity is 21, min value is 1, max value is 20", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("out of range message strips newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("all validation flavors share the validation kind", func(t *testing.T) {
		for _, err := range []error{
			errs.NewValueIsInvalidError("a"),
			errs.NewValueIsRequiredError("b"),
			errs.NewValueIsOutOfRangeError("c", 1, 2, 3),
		} {
			assert.True(t, errs.IsValidation(err), err.Error())
			require.ErrorIs(t, err, errs.ErrValidation)
		}
	})

	t.Run("joined validation errors are still validation errors", func(t *testing.T) {
		err := errors.Join(nil, errs.NewValueIsRequiredError("name"), errs.NewValueIsInvalidError("image"))

		assert.True(t, errs.IsValidation(err))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestReferentialIntegrityError(t *testing.T) {
	err := errs.NewReferentialIntegrityError("category", "c-1", "food items", 3)

	assert.Equal(t, "referential integrity violated: category c-1 is referenced by 3 food items", err.Error())
	require.ErrorIs(t, err, errs.ErrReferentialIntegrity)
	assert.False(t, errs.IsValidation(err))

	withCause := errs.NewReferentialIntegrityErrorWithCause("category", "c-1", "food items", errors.New("fk"))
	assert.Equal(t, "referential integrity violated: category c-1 is referenced by food items (cause: fk)",
		withCause.Error())
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("status", "pending", "delivered")

	assert.Equal(t, "invalid transition: status pending -> delivered", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	var target *errs.InvalidTransitionError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &target)
	assert.Equal(t, "delivered", target.To)
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("order", "o-1", 2)

	assert.Equal(t, "concurrent modification: order o-1 changed since version 2", err.Error())
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestIntegrityError(t *testing.T) {
	err := errs.NewIntegrityError("order", "o-1", "total 10 does not match line items 12")

	assert.Equal(t, "integrity violated: order o-1: total 10 does not match line items 12", err.Error())
	require.ErrorIs(t, err, errs.ErrIntegrity)
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("delete category", "only the owner may delete it")

	assert.Equal(t, "forbidden: delete category: only the owner may delete it", err.Error())
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.False(t, errs.IsValidation(err))
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "concurrent modification", errs.ErrConflict.Error())
}

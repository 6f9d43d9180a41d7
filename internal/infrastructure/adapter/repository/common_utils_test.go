package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier_IsDuplicateKeyError(t *testing.T) {
	classifier := NewErrorClassifier()

	assert.True(t, classifier.IsDuplicateKeyError(errors.New(`duplicate key value violates unique constraint "holdings_pkey"`)))
	assert.True(t, classifier.IsDuplicateKeyError(errors.New("UNIQUE constraint failed: accounts.id")))
	assert.True(t, classifier.IsDuplicateKeyError(errors.New("Duplicate entry '1' for key 'PRIMARY'")))
	assert.False(t, classifier.IsDuplicateKeyError(errors.New("connection refused")))
	assert.False(t, classifier.IsDuplicateKeyError(nil))
}

func TestErrorClassifier_IsLockError(t *testing.T) {
	classifier := NewErrorClassifier()

	assert.True(t, classifier.IsLockError(errors.New("deadlock detected")))
	assert.True(t, classifier.IsLockError(errors.New("lock wait timeout exceeded")))
	assert.True(t, classifier.IsLockError(errors.New("could not serialize access due to concurrent update")))
	assert.True(t, classifier.IsLockError(errors.New("ERROR: serialization failure")))
	assert.False(t, classifier.IsLockError(errors.New("syntax error")))
	assert.False(t, classifier.IsLockError(nil))
}

func TestErrorClassifier_IsCheckConstraintError(t *testing.T) {
	classifier := NewErrorClassifier()

	assert.True(t, classifier.IsCheckConstraintError(errors.New(`new row for relation "holdings" violates check constraint "chk_holdings_quantity"`)))
	assert.True(t, classifier.IsCheckConstraintError(errors.New("check constraint failed")))
	assert.False(t, classifier.IsCheckConstraintError(errors.New("not null violation")))
	assert.False(t, classifier.IsCheckConstraintError(nil))
}

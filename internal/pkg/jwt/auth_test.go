//go:build unit

package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJwtAuth(t *testing.T) {
	t.Parallel()
	auth := NewJwtAuth("test-key")
	token, err := auth.Encode(jwt.MapClaims{SchoolIDName: 42})
	require.NoError(t, err)

	claims, err := auth.Decode("Bearer " + token)
	require.NoError(t, err)
	id, err := SchoolID(claims)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = NewJwtAuth("other-key").Decode(token)
	assert.Error(t, err)

	expired, err := auth.Encode(jwt.MapClaims{
		SchoolIDName: 42,
		"exp":        time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, err)
	_, err = auth.Decode(expired)
	assert.Error(t, err)
}

func TestSchoolID(t *testing.T) {
	t.Parallel()
	_, err := SchoolID(jwt.MapClaims{})
	assert.ErrorIs(t, err, ErrSchoolIDNotFound)
	_, err = SchoolID(jwt.MapClaims{SchoolIDName: "abc"})
	assert.ErrorIs(t, err, ErrSchoolIDNotFound)
}

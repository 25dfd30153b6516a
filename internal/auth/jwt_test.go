package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rodacerta/frotagest/internal/constants"
)

func TestIssueAndParseToken(t *testing.T) {
	token, exp, err := IssueToken("test-secret", "op-1", "Maria Souza", constants.RoleManager, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "op-1", claims.OperatorID)
	assert.Equal(t, "Maria Souza", claims.Name)
	assert.Equal(t, constants.RoleManager, claims.RoleValue)
	assert.True(t, claims.CanManage())
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := IssueToken("test-secret", "op-1", "Maria", constants.RoleOperator, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, _, err := IssueToken("test-secret", "op-1", "Maria", constants.RoleOperator, -2*time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("test-secret", token)
	assert.Error(t, err)
}

func TestIssueTokenEmptySecret(t *testing.T) {
	_, _, err := IssueToken("", "op-1", "Maria", constants.RoleOperator, time.Hour)
	assert.Error(t, err)
}

func TestOperatorRoleCannotManage(t *testing.T) {
	claims := &JWTClaims{OperatorID: "op-2", RoleValue: constants.RoleOperator}
	assert.False(t, claims.CanManage())
}

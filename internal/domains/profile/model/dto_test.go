package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileRequestValidation(t *testing.T) {
	empty := ""
	req := UpdateProfileRequest{Username: &empty}
	assert.Error(t, req.Validate())

	name := "alice"
	req.Username = &name
	assert.NoError(t, req.Validate())
}

func TestProfileListItemFieldNames(t *testing.T) {
	data, err := json.Marshal(ProfileListItem{})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"followers_count"`)
	assert.Contains(t, string(data), `"following_count"`)
	assert.Contains(t, string(data), `"is_followed_by_me"`)
}

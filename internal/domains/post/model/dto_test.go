package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "valid text", text: "hello world", wantErr: false},
		{name: "empty text", text: "", wantErr: true},
		{name: "exactly at limit", text: strings.Repeat("a", MaxPostTextLength), wantErr: false},
		{name: "over limit", text: strings.Repeat("a", MaxPostTextLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreatePostRequest{Text: tt.text}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdatePostRequestValidation(t *testing.T) {
	req := UpdatePostRequest{Text: strings.Repeat("b", MaxPostTextLength+1)}
	assert.Error(t, req.Validate())

	req.Text = "fine"
	assert.NoError(t, req.Validate())
}

func TestPostListItemFieldNames(t *testing.T) {
	data, err := json.Marshal(PostListItem{})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"liked_by_user"`)
	assert.Contains(t, string(data), `"likes_count"`)
	assert.Contains(t, string(data), `"comments_count"`)
}

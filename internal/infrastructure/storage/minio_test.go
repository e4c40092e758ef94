package storage

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		filename   string
		wantPrefix string
		wantExt    string
	}{
		{
			name:       "profile image keeps extension",
			prefix:     ProfileImagePrefix,
			filename:   "avatar.png",
			wantPrefix: "profile_image/",
			wantExt:    ".png",
		},
		{
			name:       "post image keeps extension",
			prefix:     PostImagePrefix,
			filename:   "sunset.jpeg",
			wantPrefix: "posts/",
			wantExt:    ".jpeg",
		},
		{
			name:       "no extension",
			prefix:     PostImagePrefix,
			filename:   "rawfile",
			wantPrefix: "posts/",
			wantExt:    "",
		},
		{
			name:       "only last extension kept",
			prefix:     ProfileImagePrefix,
			filename:   "archive.tar.gz",
			wantPrefix: "profile_image/",
			wantExt:    ".gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := ObjectKey(tt.prefix, tt.filename)

			require.True(t, strings.HasPrefix(key, tt.wantPrefix))
			assert.True(t, strings.HasSuffix(key, tt.wantExt))

			// The middle part is a valid UUID, not the original name.
			middle := strings.TrimSuffix(strings.TrimPrefix(key, tt.wantPrefix), tt.wantExt)
			_, err := uuid.Parse(middle)
			assert.NoError(t, err)
			assert.NotContains(t, key, "avatar")
		})
	}
}

func TestObjectKeyIsUnique(t *testing.T) {
	a := ObjectKey(PostImagePrefix, "same.jpg")
	b := ObjectKey(PostImagePrefix, "same.jpg")
	assert.NotEqual(t, a, b)
}

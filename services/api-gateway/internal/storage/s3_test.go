package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	key, err := ObjectKey("intro video.mp4")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, "-intro video.mp4"))
	assert.Len(t, strings.TrimSuffix(key, "-intro video.mp4"), 36)

	key, err = ObjectKey("../../etc/passwd")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, "-passwd"))
	assert.NotContains(t, key, "/")

	key, err = ObjectKey(`C:\uploads\cover.png`)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, "-cover.png"))

	for _, bad := range []string{"", "  ", "..", ".", "dir/", `dir\`, "a/b/ ", "../"} {
		_, err := ObjectKey(bad)
		assert.ErrorIs(t, err, ErrInvalidFileName, bad)
	}
}

func TestPresignUpload_PathStyle(t *testing.T) {
	m, err := NewS3Storage(context.Background(), S3Config{
		Endpoint:  "http://minio.local:9000",
		Region:    "us-east-1",
		AccessKey: "key",
		SecretKey: "secret",
		Bucket:    "media",
	})
	require.NoError(t, err)

	up, err := m.PresignUpload(context.Background(), "cover.png", "image/png", 1024)
	require.NoError(t, err)

	u, err := url.Parse(up.URL)
	require.NoError(t, err)
	assert.Equal(t, "minio.local:9000", u.Host)
	assert.True(t, strings.HasPrefix(u.Path, "/media/"))
	assert.Equal(t, "360", u.Query().Get("X-Amz-Expires"))
	assert.Contains(t, u.Query().Get("X-Amz-SignedHeaders"), "content-type")

	assert.Equal(t, "http://minio.local:9000/media/"+up.Key, m.PublicURL(up.Key))
}

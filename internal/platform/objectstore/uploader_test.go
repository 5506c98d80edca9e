package objectstore

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/isaqu3d/star-wars-wiki-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(
	_ context.Context,
	params *s3.PutObjectInput,
	_ ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		f.body, _ = io.ReadAll(params.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestUploaderUpload(t *testing.T) {
	t.Parallel()

	client := &fakePutter{}
	u := NewUploaderWithClient(client, "swapi", "https://cdn.example.com/", nil)

	url, err := u.Upload(context.Background(), "characters/luke.png", pngHeader, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/characters/luke.png", url)

	require.NotNil(t, client.input)
	assert.Equal(t, "swapi", aws.ToString(client.input.Bucket))
	assert.Equal(t, "characters/luke.png", aws.ToString(client.input.Key))
	assert.Equal(t, "image/png", aws.ToString(client.input.ContentType))
	assert.Equal(t, types.ObjectCannedACLPublicRead, client.input.ACL)
	assert.Contains(t, client.input.Metadata, "uploadedAt")
	assert.Equal(t, pngHeader, client.body)
}

func TestUploaderUploadError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("access denied")
	u := NewUploaderWithClient(&fakePutter{err: sentinel}, "swapi", "https://cdn.example.com", nil)

	_, err := u.Upload(context.Background(), "characters/luke.png", pngHeader, "image/png")
	assert.ErrorIs(t, err, sentinel)
}

func TestNewUploaderRequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := NewUploader(context.Background(), config.StorageConfig{}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewUploaderWithClientPanicsOnNil(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewUploaderWithClient(nil, "b", "u", nil) })
}

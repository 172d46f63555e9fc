package storage

import (
	"FoodGuard-Backend/domain"
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	puts    map[string][]byte
	deleted []string
}

func (f *fakeObjectAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts[*in.Key] = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestAwsS3_UploadAndLinks(t *testing.T) {
	api := &fakeObjectAPI{puts: map[string][]byte{}}
	s := NewAwsS3WithClient(api, "foodguard", "ap-southeast-1")

	key, err := s.UploadFile("food-item-1", fileHeader(t, "photo.PNG", []byte("png-bytes")), "food-items", AllowImage...)
	require.NoError(t, err)
	assert.Regexp(t, `^food-items/food-item-1-\d+\.png$`, key)
	assert.Equal(t, []byte("png-bytes"), api.puts[key])

	link := s.GetPublicLinkKey(key)
	assert.Equal(t, key, s.GetObjectKeyFromLink(link))
	assert.Equal(t, "", s.GetObjectKeyFromLink("https://elsewhere.example.com/x.png"))
}

func TestAwsS3_RejectsDisallowedExtension(t *testing.T) {
	api := &fakeObjectAPI{puts: map[string][]byte{}}
	s := NewAwsS3WithClient(api, "foodguard", "ap-southeast-1")

	_, err := s.UploadFile("food-item-1", fileHeader(t, "notes.txt", []byte("x")), "food-items", AllowImage...)

	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)
	assert.Empty(t, api.puts)
}

func TestAwsS3_UpdateReplacesExtension(t *testing.T) {
	api := &fakeObjectAPI{puts: map[string][]byte{}}
	s := NewAwsS3WithClient(api, "foodguard", "ap-southeast-1")

	key, err := s.UpdateFile("food-items/a-1.jpg", fileHeader(t, "new.webp", []byte("w")), AllowImage...)
	require.NoError(t, err)

	assert.Equal(t, "food-items/a-1.webp", key)
	assert.Equal(t, []string{"food-items/a-1.jpg"}, api.deleted)
}

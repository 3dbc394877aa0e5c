package evidences

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/odontoforense/api-go/internal/pkg/cloudinary"
)

type fakeReference struct{ exists bool }

func (f *fakeReference) Exists(context.Context, primitive.ObjectID) (bool, error) {
	return f.exists, nil
}

type fakeUploader struct {
	result          *cloudinary.UploadResult
	deletedPublicID string
	deletedType     string
}

func (f *fakeUploader) Upload(context.Context, multipart.File, *multipart.FileHeader) (*cloudinary.UploadResult, error) {
	return f.result, nil
}

func (f *fakeUploader) Delete(_ context.Context, publicID, resourceType string) error {
	f.deletedPublicID = publicID
	f.deletedType = resourceType
	return nil
}

// unreachableRepo fails every write quickly, standing in for a store outage
func unreachableRepo(t *testing.T) *Repository {
	t.Helper()

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(50*time.Millisecond).
		SetConnectTimeout(50*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	return NewRepository(client.Database("evidences_test"))
}

func multipartUpload(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"nome_evidencia": "Radiografia panorâmica",
		"data_coleta":    "2024-03-10",
		"coletadoPor":    primitive.NewObjectID().Hex(),
		"caso":           primitive.NewObjectID().Hex(),
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="radiografia.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestCreateDeletesUploadWhenInsertFails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uploader := &fakeUploader{result: &cloudinary.UploadResult{
		URL:          "https://res.cloudinary.com/demo/image/upload/v1/odonto/radiografia.jpg",
		PublicID:     "odonto/radiografia",
		ResourceType: "image",
	}}
	handler := NewHandler(unreachableRepo(t), uploader, &fakeReference{exists: true}, &fakeReference{exists: true})

	router := gin.New()
	router.POST("/evidencia", handler.Create)

	body, contentType := multipartUpload(t)
	req := httptest.NewRequest(http.MethodPost, "/evidencia", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "odonto/radiografia", uploader.deletedPublicID)
	assert.Equal(t, "image", uploader.deletedType)
}

func TestCreateRejectsUnknownCase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(nil, nil, &fakeReference{exists: false}, &fakeReference{exists: true})

	router := gin.New()
	router.POST("/evidencia", handler.Create)

	body, contentType := multipartUpload(t)
	req := httptest.NewRequest(http.MethodPost, "/evidencia", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "caso não encontrado")
}

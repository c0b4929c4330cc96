package handler_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// uploadRequest builds a multipart upload with the given file and extra fields
func uploadRequest(t *testing.T, filename string, data []byte, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if data != nil {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/api/v1/media/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return withParams(req.WithContext(adminContext(domain.AdminRoleAdmin)), nil)
}

func TestMediaHandler_UploadAndServe(t *testing.T) {
	f := setupFixture(t)
	project := testutil.CreateTestProject(t, f.db, "Terrasse", 1)
	data := pngBytes(t, 40, 30)

	rr := serve(f.media.Upload, uploadRequest(t, "Terrasse før.png", data, map[string]string{
		"projectId": project.ID.String(),
		"altText":   "Terrassen før arbeidet",
	}))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	media := decode[domain.MediaDTO](t, rr)
	assert.Equal(t, domain.MediaKindImage, media.Kind)
	assert.Equal(t, "image/png", media.ContentType)
	assert.Equal(t, 40, media.Width)
	assert.Equal(t, 30, media.Height)
	require.NotNil(t, media.ProjectID)
	assert.Equal(t, project.ID, *media.ProjectID)

	rr = serve(f.media.Serve, newRequest(t, http.MethodGet, "/media/"+media.ID.String(), nil, map[string]string{"id": media.ID.String()}))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Disposition"), "inline"))
	assert.Equal(t, "public, max-age=86400", rr.Header().Get("Cache-Control"))
	assert.Equal(t, data, rr.Body.Bytes())
}

func TestMediaHandler_UploadRejections(t *testing.T) {
	f := setupFixture(t)

	t.Run("missing file", func(t *testing.T) {
		rr := serve(f.media.Upload, uploadRequest(t, "", nil, map[string]string{"altText": "x"}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unsupported type", func(t *testing.T) {
		rr := serve(f.media.Upload, uploadRequest(t, "notes.txt", []byte("just some plain text"), nil))
		assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
	})

	t.Run("bad project id", func(t *testing.T) {
		rr := serve(f.media.Upload, uploadRequest(t, "a.png", pngBytes(t, 2, 2), map[string]string{"projectId": "nope"}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown project", func(t *testing.T) {
		rr := serve(f.media.Upload, uploadRequest(t, "a.png", pngBytes(t, 2, 2), map[string]string{
			"projectId": "00000000-0000-0000-0000-000000000001",
		}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestMediaHandler_DeleteInUse(t *testing.T) {
	f := setupFixture(t)
	project := testutil.CreateTestProject(t, f.db, "Kjeller", 1)
	cover := testutil.CreateTestMedia(t, f.db, &project.ID, 1)
	require.NoError(t, f.db.Model(project).Update("cover_media_id", cover.ID).Error)
	loose := testutil.CreateTestMedia(t, f.db, nil, 1)

	rr := serve(f.media.Delete, newRequest(t, http.MethodDelete, "/", nil, map[string]string{"id": cover.ID.String()}))
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = serve(f.media.Delete, newRequest(t, http.MethodDelete, "/", nil, map[string]string{"id": loose.ID.String()}))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(f.media.Serve, newRequest(t, http.MethodGet, "/", nil, map[string]string{"id": loose.ID.String()}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMediaHandler_ListAndUpdate(t *testing.T) {
	f := setupFixture(t)
	project := testutil.CreateTestProject(t, f.db, "Garasje", 1)
	attached := testutil.CreateTestMedia(t, f.db, &project.ID, 1)
	testutil.CreateTestMedia(t, f.db, nil, 1)

	rr := serve(f.media.List, newRequest(t, http.MethodGet, "/admin/api/v1/media?projectId="+project.ID.String(), nil, nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	list := decode[page[domain.MediaDTO]](t, rr)
	require.Len(t, list.Data, 1)
	assert.Equal(t, attached.ID, list.Data[0].ID)

	rr = serve(f.media.List, newRequest(t, http.MethodGet, "/admin/api/v1/media?unattached=true", nil, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(1), decode[page[domain.MediaDTO]](t, rr).Total)

	rr = serve(f.media.Update, newRequest(t, http.MethodPut, "/", domain.UpdateMediaRequest{AltText: "Ny garasjeport", ProjectID: &project.ID},
		map[string]string{"id": attached.ID.String()}))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Ny garasjeport", decode[domain.MediaDTO](t, rr).AltText)
}

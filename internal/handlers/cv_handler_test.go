package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"alfredoptarigan/cv-screener/internal/models"
	"alfredoptarigan/cv-screener/internal/services"
	svcmocks "alfredoptarigan/cv-screener/internal/services/mocks"
)

type uploadPart struct {
	name        string
	contentType string
	data        string
}

func multipartBody(t *testing.T, parts ...uploadPart) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, p.name))
		h.Set("Content-Type", p.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(p.data))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func newCVApp(cvService services.CVService, session *models.Session) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	h := NewCVHandler(cvService, 2)
	app.Post("/cvs", withSession(session), h.HandleUpload)
	app.Get("/cvs", withSession(session), h.HandleList)
	app.Get("/cvs/:id/download", withSession(session), h.HandleDownload)
	app.Delete("/cvs/:id", withSession(session), h.HandleDelete)
	return app
}

func TestCVHandler_HandleUpload(t *testing.T) {
	session := &models.Session{UserID: uuid.New()}

	testCases := []struct {
		name  string
		mock  func(ctrl *gomock.Controller) services.CVService
		parts []uploadPart

		wantCode int
	}{
		{
			name: "accepted",
			mock: func(ctrl *gomock.Controller) services.CVService {
				svc := svcmocks.NewMockCVService(ctrl)
				svc.EXPECT().Upload(gomock.Any(), session, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *models.Session, files []models.UploadFile) (*models.UploadReport, error) {
						require.Len(t, files, 2)
						assert.Equal(t, "a.pdf", files[0].Name)
						assert.Equal(t, "application/pdf", files[0].ContentType)
						assert.Equal(t, []byte("%PDF-1.4"), files[0].Data)
						assert.Equal(t, int64(8), files[0].Size)
						return &models.UploadReport{
							Accepted: 1,
							Rejected: 1,
							Files: []models.FileOutcome{
								{FileName: "a.pdf", Accepted: true},
								{FileName: "b.png", Reason: "b.png is not a PDF or Word document"},
							},
						}, nil
					})
				return svc
			},
			parts: []uploadPart{
				{name: "a.pdf", contentType: "application/pdf", data: "%PDF-1.4"},
				{name: "b.png", contentType: "image/png", data: "png"},
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "everything rejected",
			mock: func(ctrl *gomock.Controller) services.CVService {
				svc := svcmocks.NewMockCVService(ctrl)
				svc.EXPECT().Upload(gomock.Any(), session, gomock.Any()).
					Return(&models.UploadReport{Rejected: 1, Files: []models.FileOutcome{{FileName: "b.png"}}}, nil)
				return svc
			},
			parts:    []uploadPart{{name: "b.png", contentType: "image/png", data: "png"}},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "too many files",
			mock: func(ctrl *gomock.Controller) services.CVService {
				return svcmocks.NewMockCVService(ctrl)
			},
			parts: []uploadPart{
				{name: "a.pdf", contentType: "application/pdf", data: "1"},
				{name: "b.pdf", contentType: "application/pdf", data: "2"},
				{name: "c.pdf", contentType: "application/pdf", data: "3"},
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			body, contentType := multipartBody(t, tc.parts...)
			req := httptest.NewRequest(http.MethodPost, "/cvs", body)
			req.Header.Set(fiber.HeaderContentType, contentType)

			resp, err := newCVApp(tc.mock(ctrl), session).Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, resp.StatusCode)
		})
	}
}

func TestUploadFileFrom(t *testing.T) {
	header := make(textproto.MIMEHeader)
	header.Set(fiber.HeaderContentType, "application/pdf")

	// a header with neither content nor a temp file cannot be opened
	file := uploadFileFrom(&multipart.FileHeader{Filename: "lost.pdf", Header: header, Size: 12})

	assert.Equal(t, "lost.pdf", file.Name)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, int64(12), file.Size)
	assert.Error(t, file.ReadErr)
	assert.Nil(t, file.Data)
}

func TestCVHandler_HandleUpload_NoFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body, contentType := multipartBody(t)
	req := httptest.NewRequest(http.MethodPost, "/cvs", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := newCVApp(svcmocks.NewMockCVService(ctrl), &models.Session{UserID: uuid.New()}).Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp)["error"], "No files uploaded")
}

func TestCVHandler_DownloadAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := &models.Session{UserID: uuid.New()}
	cv := &models.CV{ID: uuid.New(), FileName: "Jane Doe.pdf", MimeType: "application/pdf"}
	gone := uuid.New()

	svc := svcmocks.NewMockCVService(ctrl)
	svc.EXPECT().Download(gomock.Any(), session, cv.ID).Return(cv, []byte("%PDF-1.4"), nil)
	svc.EXPECT().Delete(gomock.Any(), session, cv.ID).Return(nil)
	svc.EXPECT().Delete(gomock.Any(), session, gone).Return(fmt.Errorf("%s: %w", gone, services.ErrCVNotFound))
	svc.EXPECT().List(gomock.Any(), session).Return(nil, errors.New("db down"))

	app := newCVApp(svc, session)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/cvs/"+cv.ID.String()+"/download", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="Jane Doe.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/cvs/"+cv.ID.String(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/cvs/"+gone.String(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/cvs/42", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/cvs", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.True(t, strings.Contains(decodeBody(t, resp)["error"].(string), "Internal server error"))
}

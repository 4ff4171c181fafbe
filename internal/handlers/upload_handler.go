package handlers

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-screener/internal/models"
	"alfredoptarigan/cv-screener/internal/services"
)

type CVHandler struct {
	cvService services.CVService
	maxFiles  int
}

func NewCVHandler(cvService services.CVService, maxFiles int) *CVHandler {
	return &CVHandler{
		cvService: cvService,
		maxFiles:  maxFiles,
	}
}

// HandleUpload handles POST /cvs with one or more "files" parts.
func (h *CVHandler) HandleUpload(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return writeError(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No files uploaded. Please upload PDF or Word documents as 'files'.",
		})
	}
	if h.maxFiles > 0 && len(headers) > h.maxFiles {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Too many files. Max %d per upload", h.maxFiles),
		})
	}

	files := make([]models.UploadFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, uploadFileFrom(fh))
	}

	report, err := h.cvService.Upload(c.UserContext(), session, files)
	if err != nil {
		return writeError(c, err)
	}

	if report.Accepted == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "No files were uploaded",
			"report": report,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("%d file(s) uploaded successfully", report.Accepted),
		"report":  report,
	})
}

// uploadFileFrom reads one part. A part that cannot be read is still passed on
// so it is reported as rejected alongside the others.
func uploadFileFrom(fh *multipart.FileHeader) models.UploadFile {
	data, err := readMultipartFile(fh)
	return models.UploadFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Data:        data,
		ReadErr:     err,
	}
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

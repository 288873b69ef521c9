package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/SscSPs/restaurant_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// uploadHandler handles statement and invoice uploads.
type uploadHandler struct {
	ingestService portssvc.IngestSvc
	maxBytes      int64
}

func newUploadHandler(svc portssvc.IngestSvc, maxBytes int64) *uploadHandler {
	return &uploadHandler{ingestService: svc, maxBytes: maxBytes}
}

func registerUploadRoutes(rg *gin.RouterGroup, svc portssvc.IngestSvc, maxBytes int64, lim *limiter.Limiter) {
	h := newUploadHandler(svc, maxBytes)
	rg.POST("/upload", middleware.RateLimit(lim), h.upload)
}

func uploadError(c *gin.Context, status int, msg string) {
	c.JSON(status, domain.UploadResult{Status: domain.UploadError, Message: msg})
}

// upload godoc
// @Summary Upload a bank, credit-card or invoice export
// @Description Detects the export format from its columns, checks it against the tab it was uploaded from and stores every new row. Re-uploading a file saves nothing new.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX export"
// @Param target_tab formData string false "Tab the file was uploaded from" Enums(invoice, ledger, credit_card)
// @Success 200 {object} domain.UploadResult
// @Failure 400 {object} domain.UploadResult "Unknown format, wrong tab or unreadable file"
// @Failure 413 {object} domain.UploadResult "File too large"
// @Failure 429 {object} map[string]string "Too many uploads"
// @Failure 500 {object} domain.UploadResult "Failed to store rows"
// @Router /upload [post]
func (h *uploadHandler) upload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			uploadError(c, http.StatusRequestEntityTooLarge, "file is too large")
			return
		}
		logger.Warn("Upload without a file", slog.String("error", err.Error()))
		uploadError(c, http.StatusBadRequest, "a file is required")
		return
	}

	tab, ok := domain.ParseTab(c.PostForm("target_tab"))
	if !ok {
		uploadError(c, http.StatusBadRequest, "target_tab must be one of invoice, ledger, credit_card")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		uploadError(c, http.StatusBadRequest, "could not read the uploaded file")
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
		uploadError(c, http.StatusBadRequest, "could not read the uploaded file")
		return
	}

	logger = logger.With(slog.String("filename", fileHeader.Filename), slog.String("target_tab", string(tab)))
	logger.Info("Received upload", slog.Int("bytes", len(content)))

	result, err := h.ingestService.ProcessUpload(c.Request.Context(), content, fileHeader.Filename, tab)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownFormat),
			errors.Is(err, apperrors.ErrTabMismatch),
			errors.Is(err, apperrors.ErrParse),
			errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Upload rejected", slog.String("error", err.Error()))
			uploadError(c, http.StatusBadRequest, err.Error())
		default:
			logger.Error("Upload failed", slog.String("error", err.Error()))
			uploadError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

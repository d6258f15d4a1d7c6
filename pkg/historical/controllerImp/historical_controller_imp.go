package controllerImp

import (
	"encoding/base64"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"farmtwin/pkg/apperr"
)

// HistoricalCtrl stores uploaded historical data files verbatim on disk; no
// parsing or validation of the content happens at this layer.
type HistoricalCtrl struct {
	dir    string
	logger *zap.Logger
}

func New(dir string, logger *zap.Logger) *HistoricalCtrl {
	return &HistoricalCtrl{dir: dir, logger: logger}
}

type uploadReq struct {
	Filename string `json:"filename"`
	FileData string `json:"fileData"`
}

func (h *HistoricalCtrl) Upload(c echo.Context) error {
	var req uploadReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	name := filepath.Base(req.Filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return apperr.New(apperr.Validation, "filename is required")
	}
	data, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		return apperr.New(apperr.Validation, "fileData must be base64 encoded")
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return apperr.Wrap(apperr.Storage, "create upload dir", err)
	}
	path := filepath.Join(h.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperr.Wrap(apperr.Storage, "write upload", err)
	}
	h.logger.Info("stored historical upload",
		zap.String("file", path),
		zap.Int("bytes", len(data)))
	return c.JSON(http.StatusCreated, echo.Map{"filePath": path})
}

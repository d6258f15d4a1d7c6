package controllerImp

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"farmtwin/pkg/apperr"
)

func doUpload(t *testing.T, h *HistoricalCtrl, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/historical/upload", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h.Upload(e.NewContext(req, rec))
}

func TestUploadWritesFileVerbatim(t *testing.T) {
	dir := t.TempDir()
	h := New(dir, zap.NewNop())

	content := []byte("date,yield\n2025-01-01,42\n")
	body, _ := json.Marshal(map[string]string{
		"filename": "harvest.csv",
		"fileData": base64.StdEncoding.EncodeToString(content),
	})
	rec, err := doUpload(t, h, string(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, filepath.Join(dir, "harvest.csv"), resp["filePath"])

	stored, err := os.ReadFile(resp["filePath"])
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestUploadStripsDirectoryFromFilename(t *testing.T) {
	dir := t.TempDir()
	h := New(dir, zap.NewNop())

	body, _ := json.Marshal(map[string]string{
		"filename": "../../etc/passwd",
		"fileData": base64.StdEncoding.EncodeToString([]byte("x")),
	})
	rec, err := doUpload(t, h, string(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, filepath.Join(dir, "passwd"), resp["filePath"])
}

func TestUploadRejectsBadBase64(t *testing.T) {
	h := New(t.TempDir(), zap.NewNop())

	body, _ := json.Marshal(map[string]string{
		"filename": "a.csv",
		"fileData": "not base64!!!",
	})
	_, err := doUpload(t, h, string(body))
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestUploadRequiresFilename(t *testing.T) {
	h := New(t.TempDir(), zap.NewNop())

	body, _ := json.Marshal(map[string]string{
		"fileData": base64.StdEncoding.EncodeToString([]byte("x")),
	})
	_, err := doUpload(t, h, string(body))
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestUploadCreatesDirOnDemand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	h := New(dir, zap.NewNop())

	body, _ := json.Marshal(map[string]string{
		"filename": "a.bin",
		"fileData": base64.StdEncoding.EncodeToString([]byte{0x00, 0xff}),
	})
	rec, err := doUpload(t, h, string(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	stored, err := os.ReadFile(filepath.Join(dir, "a.bin"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff}, stored)
}

package filestore

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxFileSize   = 10 * 1024 * 1024 // 10 MB
	DefaultDir    = "./uploads"
	DefaultURLBase = "/static"
)

var (
	ErrEmptyFile       = errors.New("empty file")
	ErrFileTooLarge    = errors.New("file too large")
	ErrInvalidMimeType = errors.New("unsupported file type")
)

// allowedMimeTypes: hotel images only.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Store writes uploaded files somewhere retrievable and hands back a
// public URL. The catalog module only depends on this interface.
type Store interface {
	Save(fileHeader *multipart.FileHeader) (url string, err error)
	Remove(url string) error
}

// DiskStore saves files under baseDir/YYYY/MM/DD and serves them from a
// static route mounted at urlBase.
type DiskStore struct {
	baseDir string
	urlBase string
}

func NewDiskStore(baseDir, urlBase string) *DiskStore {
	if baseDir == "" {
		baseDir = DefaultDir
	}
	if urlBase == "" {
		urlBase = DefaultURLBase
	}
	return &DiskStore{baseDir: baseDir, urlBase: strings.TrimSuffix(urlBase, "/")}
}

func (s *DiskStore) BaseDir() string { return s.baseDir }

func (s *DiskStore) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size == 0 {
		return "", ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !allowedMimeTypes[mimeType] {
		return "", ErrInvalidMimeType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := uuid.NewString() + ext

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.urlBase + "/" + relDir + "/" + filename, nil
}

// Remove deletes the stored file behind a URL previously returned by
// Save. A missing file is not an error, the row is what matters.
func (s *DiskStore) Remove(url string) error {
	rel := strings.TrimPrefix(url, s.urlBase+"/")
	if rel == url || strings.Contains(rel, "..") {
		return nil
	}
	_ = os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(rel)))
	return nil
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}

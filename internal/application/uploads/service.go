package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// Service streams uploaded photos to a local directory served back at
// PublicPath. Files are named <capture-millis><original-extension>; two
// uploads in the same millisecond with the same extension could collide,
// which is accepted. Nothing here ever deletes a file — replaced or orphaned
// images accumulate until cleaned up out of band.
type Service struct {
	Dir        string // destination directory, created on demand
	PublicPath string // URL prefix the directory is served under, e.g. /uploads
}

func NewService(dir string) *Service {
	return &Service{Dir: dir, PublicPath: "/uploads"}
}

// SavePhoto writes the uploaded file and returns its relative URL path.
// A nil header means no file was attached; the result is then empty.
func (s *Service) SavePhoto(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", nil
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return s.PublicPath + "/" + name, nil
}

package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/utils"

	"github.com/disintegration/imaging"
)

// UploadService stores member images on local disk and hands back public
// URLs, mirroring the hosted-storage contract the client expects.
type UploadService struct {
	Dir       string
	BaseURL   string
	RequestID string
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// SaveImage writes the original under profiles/<userID>/ and a 200px-wide
// thumbnail next to it. Thumbnail failures are logged, not fatal.
func (s UploadService) SaveImage(userID string, file multipart.File, header *multipart.FileHeader) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		return "", "", domain.ValidationError{Field: "image", Msg: "only jpg, png or gif images are accepted"}
	}

	relDir := filepath.Join("profiles", userID)
	if err := os.MkdirAll(filepath.Join(s.Dir, relDir), 0o755); err != nil {
		return "", "", err
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)
	relPath := filepath.Join(relDir, name)
	fullPath := filepath.Join(s.Dir, relPath)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", "", err
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		return "", "", err
	}
	if err := dst.Close(); err != nil {
		return "", "", err
	}

	thumbURL := ""
	if img, err := imaging.Open(fullPath); err == nil {
		thumb := imaging.Resize(img, 200, 0, imaging.Lanczos)
		thumbRel := strings.TrimSuffix(relPath, ext) + "_thumb" + ext
		if err := imaging.Save(thumb, filepath.Join(s.Dir, thumbRel)); err == nil {
			thumbURL = s.publicURL(thumbRel)
		} else {
			utils.LogEvent(s.RequestID, "upload", "thumb_failed", err.Error())
		}
	} else {
		utils.LogEvent(s.RequestID, "upload", "thumb_decode_failed", err.Error())
	}

	return s.publicURL(relPath), thumbURL, nil
}

func (s UploadService) publicURL(relPath string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/uploads/" + filepath.ToSlash(relPath)
}

package libs

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cyber-shop/config"

	"github.com/gin-gonic/gin"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SaveUploadedImage validates and stages an uploaded image under the upload
// dir, returning the saved path.
func SaveUploadedImage(c *gin.Context, header *multipart.FileHeader, subDir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return "", fmt.Errorf("invalid file type, only jpg, jpeg, png, gif, webp allowed")
	}

	if header.Size > config.AppConfig.MaxUploadSize {
		return "", fmt.Errorf("file too large (max %d bytes)", config.AppConfig.MaxUploadSize)
	}

	uploadDir := filepath.Join(config.AppConfig.UploadDir, subDir)
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	path := filepath.Join(uploadDir, filename)

	if err := c.SaveUploadedFile(header, path); err != nil {
		return "", err
	}

	return path, nil
}

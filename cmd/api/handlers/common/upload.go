package common

import (
	"os"
	"path/filepath"
	"strings"

	"VidTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Uploads tracks the multipart files spooled to disk for one request.
type Uploads struct {
	paths []string
}

// Save spools the form file field to a temp file and returns its path, or
// "" when the request carries no such file.
func (u *Uploads) Save(c *app.RequestContext, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil || file == nil || file.Size == 0 {
		return "", nil
	}
	dir := filepath.Join(os.TempDir(), constants.UploadTempDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create upload dir")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	dst := filepath.Join(dir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", errors.Wrapf(err, "save upload %s", field)
	}
	u.paths = append(u.paths, dst)
	return dst, nil
}

// Cleanup removes every spooled file.
func (u *Uploads) Cleanup() {
	for _, p := range u.paths {
		_ = os.Remove(p)
	}
	u.paths = nil
}

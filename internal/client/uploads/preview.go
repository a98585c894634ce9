package uploads

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/autohub/autohub-cli/internal/filex"
)

// previewDirName is created under the working directory; previews are
// client-only artifacts and are never sent anywhere.
const previewDirName = "preview"

// MaterializePreview copies the selected image into the local preview
// directory under a fresh uuid name, keeping the original extension, and
// returns the preview path. The sell screen shows these paths so the user
// can inspect what will be uploaded before submitting.
func MaterializePreview(path string) (string, error) {
	dir, err := filex.EnsureSubDir(previewDirName)
	if err != nil {
		return "", fmt.Errorf("preview dir: %w", err)
	}

	name := uuid.New().String() + filepath.Ext(path)
	dst := filepath.Join(dir, name)

	if err := filex.CopyFile(path, dst); err != nil {
		return "", fmt.Errorf("materialize preview: %w", err)
	}
	return dst, nil
}

// Package filestorage manages the uploads directory that aid-request
// documents are copied into. References handed back to callers are always
// slash-separated paths relative to the base directory, so the store stays
// portable across machines.
package filestorage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/uniaid/aidtrack/internal/pkg/apperrors"
	"github.com/uniaid/aidtrack/internal/pkg/logger"
)

// LocalStorage copies attachment files under <baseDir>/<uploadsDir>.
type LocalStorage struct {
	baseDir    string
	uploadsDir string
}

// NewLocalStorage creates the uploads directory if absent.
func NewLocalStorage(baseDir, uploadsDir string) (*LocalStorage, error) {
	full := filepath.Join(baseDir, uploadsDir)
	if err := os.MkdirAll(full, 0o755); err != nil {
		logger.Error().Err(err).Str("path", full).Msg("Failed to create uploads directory")
		return nil, fmt.Errorf("failed to create uploads directory %s: %w", full, err)
	}
	return &LocalStorage{baseDir: baseDir, uploadsDir: uploadsDir}, nil
}

// Attach copies the file at sourcePath into the uploads directory and
// returns its reference relative to the base directory. The stored name
// keeps the original stem for display but gains a uuid so two uploads of
// files with the same name cannot overwrite each other.
func (ls *LocalStorage) Attach(sourcePath string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	original := filepath.Base(sourcePath)
	stored := storedName(original)
	dstPath := filepath.Join(ls.baseDir, ls.uploadsDir, stored)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to copy file content: %w", err)
	}
	// close before handing out the reference; a flush failure here would
	// otherwise leave a truncated upload behind a valid-looking ref
	if err := dst.Close(); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to finish writing destination file: %w", err)
	}

	ref := path.Join(ls.uploadsDir, stored)
	logger.Info().Str("filename", original).Str("saved_as", stored).Msg("Document attached")
	return ref, nil
}

// Resolve joins a stored reference back onto the base directory for read
// access. References that point outside the base directory or at files that
// no longer exist are rejected.
func (ls *LocalStorage) Resolve(relRef string) (string, error) {
	cleaned := path.Clean(relRef)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") || path.IsAbs(cleaned) {
		return "", fmt.Errorf("document %q: %w", relRef, apperrors.ErrNotFound)
	}

	full := filepath.Join(ls.baseDir, filepath.FromSlash(cleaned))
	if _, err := os.Stat(full); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("document %q: %w", relRef, apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to stat %s: %w", full, err)
	}
	return full, nil
}

// Download copies a stored document to a destination chosen by the caller.
func (ls *LocalStorage) Download(relRef, destPath string) error {
	full, err := ls.Resolve(relRef)
	if err != nil {
		return err
	}

	src, err := os.Open(full)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(destPath)
		return fmt.Errorf("failed to copy document: %w", err)
	}
	logger.Info().Str("document", relRef).Str("dest", destPath).Msg("Document downloaded")
	return nil
}

// DisplayName strips the uuid back out of a stored reference for listing in
// user-facing surfaces.
func DisplayName(relRef string) string {
	base := path.Base(relRef)
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	// stored stems end in "-<36-char uuid>"
	const uuidLen = 36
	if len(stem) > uuidLen+1 && stem[len(stem)-uuidLen-1] == '-' {
		if _, err := uuid.Parse(stem[len(stem)-uuidLen:]); err == nil {
			return stem[:len(stem)-uuidLen-1] + ext
		}
	}
	return base
}

// storedName builds "<stem>-<uuid><ext>" from an original filename.
func storedName(original string) string {
	ext := filepath.Ext(original)
	stem := strings.TrimSuffix(original, ext)
	return stem + "-" + uuid.New().String() + ext
}

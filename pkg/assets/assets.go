// Package assets stores uploaded images and recognises inline image payloads that must not be persisted.
package assets

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const minRawBase64Len = 64

var ErrNotInline = errors.New("value is not an inline image")

// IsInline reports whether ref carries image bytes instead of pointing at them.
func IsInline(ref string) bool {
	if strings.HasPrefix(ref, "data:") {
		return true
	}
	if len(ref) < minRawBase64Len || strings.Contains(ref, "://") || strings.HasPrefix(ref, "/") {
		return false
	}
	for _, c := range ref {
		if !isBase64Char(c) {
			return false
		}
	}
	return true
}

func isBase64Char(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') ||
		c == '+' || c == '/' || c == '=' || c == '-' || c == '_'
}

// DecodeInline extracts the bytes of a data URL or a raw base64 string and sniffs their content type.
func DecodeInline(ref string) ([]byte, string, error) {
	if !IsInline(ref) {
		return nil, "", ErrNotInline
	}
	payload := ref
	if strings.HasPrefix(ref, "data:") {
		idx := strings.Index(ref, ",")
		if idx < 0 {
			return nil, "", errors.New("malformed data url")
		}
		payload = ref[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, "", errors.New("decoding inline image error: " + err.Error())
		}
	}
	return data, mimetype.Detect(data).String(), nil
}

// FileStore keeps images on local disk and serves them under BaseURL.
type FileStore struct {
	dir     string
	baseURL string
}

func NewFileStore(dir, baseURL string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.New("creating assets dir error: " + err.Error())
	}
	return &FileStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload writes data under a user scoped path and returns its public URL.
// The extension comes from the sniffed content, contentType is only a fallback.
func (fs *FileStore) Upload(ctx context.Context, uid uuid.UUID, name string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.New("empty image")
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") && !strings.HasPrefix(contentType, "image/") {
		return "", errors.New("not an image: " + mt.String())
	}
	base := sanitize(name)
	if base == "" {
		base = uuid.NewString()
	}
	file := base + mt.Extension()
	userDir := filepath.Join(fs.dir, uid.String())
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", errors.New("creating user assets dir error: " + err.Error())
	}
	if err := os.WriteFile(filepath.Join(userDir, file), data, 0o644); err != nil {
		return "", errors.New("writing image error: " + err.Error())
	}
	return fs.baseURL + "/" + uid.String() + "/" + file, nil
}

func sanitize(name string) string {
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			b.WriteRune(c)
		}
	}
	return b.String()
}

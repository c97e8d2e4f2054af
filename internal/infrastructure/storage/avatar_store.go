// Package storage guarda los avatares en disco bajo el directorio público.
// El archivo se escribe primero y la ruta se persiste en DB después, para no
// dejar referencias colgando si el upload falla a medias.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// URLPrefix ruta pública bajo la que se sirven los avatares.
const URLPrefix = "/avatars"

// AvatarStore escribe avatares con nombre único y devuelve su URL relativa.
type AvatarStore struct {
	dir string
}

// NewAvatarStore crea el store y asegura que el directorio exista.
func NewAvatarStore(dir string) (*AvatarStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de avatares: %w", err)
	}
	return &AvatarStore{dir: dir}, nil
}

// Save escribe el archivo subido con un nombre único (uuid + extensión
// original) y devuelve la URL relativa (/avatars/<nombre>).
func (s *AvatarStore) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("abrir avatar subido: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(fh.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("crear archivo de avatar: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("escribir avatar: %w", err)
	}
	return URLPrefix + "/" + name, nil
}

package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/smartunion/workforce-api/internal/domain/entity"
)

// StorageKey nombre constante bajo el que se persiste el registro del usuario
// actual en el almacenamiento duradero.
const StorageKey = "currentUser"

// Store almacenamiento duradero de la sesión: un único registro User
// serializado, leído una vez al arranque y escrito/borrado por login/logout.
type Store interface {
	// Read devuelve (nil, nil) si no hay registro persistido.
	Read() (*entity.User, error)
	Write(u *entity.User) error
	// Clear es idempotente: borrar un registro inexistente no es error.
	Clear() error
}

// FileStore implementación de Store sobre un archivo JSON en disco.
type FileStore struct {
	path string
}

// NewFileStore construye el store; dir es el directorio donde vive el archivo.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, StorageKey+".json")}
}

// Read lee y deserializa el registro persistido.
func (s *FileStore) Read() (*entity.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var u entity.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Write serializa y persiste el registro completo del usuario.
func (s *FileStore) Write(u *entity.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear elimina el registro persistido.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

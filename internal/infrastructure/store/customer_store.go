// Package store persistencia del contexto de clientes. Es el análogo del
// localStorage de la versión web (clave `erp-customers`): un único valor JSON
// con la lista de clientes semilla, fire-and-forget desde el núcleo.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/datco/erp-demo-api/internal/domain/entity"
)

// CustomerStore contrato load/save del contexto de clientes.
type CustomerStore interface {
	// Load devuelve los clientes guardados, o nil (sin error) si no hay nada.
	Load() ([]entity.Customer, error)
	Save(customers []entity.Customer) error
}

// FileCustomerStore implementación sobre un archivo JSON.
type FileCustomerStore struct {
	path string
}

// NewFileCustomerStore construye el store sobre la ruta indicada.
func NewFileCustomerStore(path string) *FileCustomerStore {
	return &FileCustomerStore{path: path}
}

var _ CustomerStore = (*FileCustomerStore)(nil)

// Load lee el contexto guardado. Un archivo inexistente no es error: es la
// primera sesión y devuelve nil como hacía localStorage.getItem.
func (s *FileCustomerStore) Load() ([]entity.Customer, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var customers []entity.Customer
	if err := json.Unmarshal(data, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// Save reemplaza el contexto completo (escritura atómica vía renombre).
func (s *FileCustomerStore) Save(customers []entity.Customer) error {
	data, err := json.MarshalIndent(customers, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

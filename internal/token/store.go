package token

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// storageKey est la clé fixe sous laquelle le token est persisté,
// comme le localStorage du navigateur
const storageKey = "token"

// Store persiste le bearer token dans un fichier local. état partagé de
// tout le processus : plusieurs composants lisent/écrivent, la dernière
// écriture gagne. Aucun suivi d'expiration côté client : une expiration
// se découvre via une requête rejetée.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Set persiste le credential. Toutes les requêtes sortantes le porteront
// ensuite en header Bearer jusqu'à Clear.
func (s *Store) Set(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	payload, err := json.Marshal(map[string]string{storageKey: value})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, payload, 0o600)
}

// Get retourne le token courant, "" si absent ou illisible
func (s *Store) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	var payload map[string]string
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload[storageKey]
}

// Clear supprime le credential ; idempotent
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

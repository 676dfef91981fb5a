// Package store persists content records to a JSON key-value file. The
// file maps article ID to record; all reads are served from an in-memory
// copy guarded by a RWMutex, and every mutation rewrites the file
// atomically (temp file plus rename).
package store

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/thebtf/gazette/pkg/models"
)

// ErrNotFound is returned when an article ID has no record.
var ErrNotFound = errors.New("article not found")

// Store is a file-backed article repository. Safe for concurrent use.
type Store struct {
	path     string
	mu       sync.RWMutex
	articles map[string]*models.Article
}

// Open loads the store at path. A missing file yields an empty store,
// not an error; the file is created on the first write.
func Open(path string) (*Store, error) {
	s := &Store{
		path:     path,
		articles: make(map[string]*models.Article),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the JSON file into memory. Callers must not hold the lock.
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read store: %w", err)
	}

	articles := make(map[string]*models.Article)
	if err := json.Unmarshal(data, &articles); err != nil {
		return fmt.Errorf("parse store %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.articles = articles
	s.mu.Unlock()
	return nil
}

// save writes the current records atomically. Callers must hold the lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.articles, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

// Add persists an article, assigning a UUID when the ID is empty and a
// creation timestamp when missing. Returns the stored record.
func (s *Store) Add(article *models.Article) (*models.Article, error) {
	if article == nil {
		return nil, errors.New("nil article")
	}
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	if article.CreatedAt == "" {
		article.CreatedAt = time.Now().Format(time.RFC3339)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.articles[article.ID] = article
	if err := s.save(); err != nil {
		return nil, err
	}
	return article, nil
}

// Get returns the article with the given ID.
func (s *Store) Get(id string) (*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, ok := s.articles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return article, nil
}

// Delete removes the article with the given ID.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[id]; !ok {
		return ErrNotFound
	}
	delete(s.articles, id)
	return s.save()
}

// List returns all articles ordered by creation time, then ID. The JSON
// map has no inherent order, so the sort keeps listings deterministic.
func (s *Store) List() []*models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	articles := make([]*models.Article, 0, len(s.articles))
	for _, a := range s.articles {
		articles = append(articles, a)
	}
	sort.Slice(articles, func(i, j int) bool {
		if articles[i].CreatedAt != articles[j].CreatedAt {
			return articles[i].CreatedAt < articles[j].CreatedAt
		}
		return articles[i].ID < articles[j].ID
	})
	return articles
}

// Count returns the number of stored articles.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles)
}

// Reload re-reads the backing file, replacing the in-memory records.
func (s *Store) Reload() error {
	return s.load()
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

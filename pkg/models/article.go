// Package models contains domain models for gazette.
package models

import "time"

// Article represents one candidate piece of content for the magazine:
// a saved article, a conversation highlight, or any short marked-up text.
type Article struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Body      string   `json:"body,omitempty"`
	Category  string   `json:"category,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// NewArticle creates an article with the creation timestamp set.
// The ID is left empty; the store assigns one on insert.
func NewArticle(title, body, category string, tags []string) *Article {
	return &Article{
		Title:     title,
		Body:      body,
		Category:  category,
		Tags:      tags,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
}

// Text returns the searchable text of the article: title and body joined
// by a single space. This is the input to keyword extraction.
func (a *Article) Text() string {
	return a.Title + " " + a.Body
}

// TagSet returns the article's tags as a set. Tag values are opaque
// tokens and are not lowercased.
func (a *Article) TagSet() map[string]bool {
	set := make(map[string]bool, len(a.Tags))
	for _, tag := range a.Tags {
		set[tag] = true
	}
	return set
}

package server

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/thebtf/gazette/internal/assembler"
	"github.com/thebtf/gazette/pkg/cluster"
	"github.com/thebtf/gazette/pkg/models"
)

// createArticleRequest is the JSON upload payload. The form-encoded
// variant carries the same fields, with tags comma-separated.
type createArticleRequest struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// generateRequest optionally overrides the configured engine options.
type generateRequest struct {
	MinSimilarity    *float64 `json:"min_similarity"`
	EnableClustering *bool    `json:"enable_clustering"`
}

// generateResponse is the section layout plus where the document landed.
type generateResponse struct {
	Sections   []cluster.Section `json:"sections"`
	Metrics    cluster.Metrics   `json:"metrics"`
	OutputPath string            `json:"output_path"`
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Service) handleListArticles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

func (s *Service) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateArticle(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	article := models.NewArticle(req.Title, req.Body, req.Category, req.Tags)
	stored, err := s.store.Add(article)
	if err != nil {
		log.Error().Err(err).Msg("Failed to store article")
		writeError(w, http.StatusInternalServerError, "failed to store article")
		return
	}

	log.Info().Str("id", stored.ID).Str("title", stored.Title).Msg("Article uploaded")
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Service) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	opts := s.config.ClusterOptions()
	if req.MinSimilarity != nil {
		opts.MinSimilarity = *req.MinSimilarity
	}
	if req.EnableClustering != nil {
		opts.EnableClustering = *req.EnableClustering
	}

	result := cluster.Generate(s.store.List(), opts)
	if err := assembler.Write(s.config.OutputPath, s.config.Title, result, opts.EnableClustering); err != nil {
		log.Error().Err(err).Msg("Failed to write magazine")
		writeError(w, http.StatusInternalServerError, "failed to write magazine")
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Sections:   result.Sections,
		Metrics:    result.Metrics,
		OutputPath: s.config.OutputPath,
	})
}

// decodeCreateArticle accepts either a JSON body or an HTML form post.
func decodeCreateArticle(r *http.Request) (*createArticleRequest, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/json") {
		var req createArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	req := &createArticleRequest{
		Title:    r.PostFormValue("title"),
		Body:     r.PostFormValue("body"),
		Category: r.PostFormValue("category"),
		Tags:     splitTags(r.PostFormValue("tags")),
	}
	return req, nil
}

// splitTags parses the form's comma-separated tag field.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

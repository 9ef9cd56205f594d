// Package catalog loads the authored quizzes. Quizzes live in YAML files,
// one quiz per file; the built-in set is embedded in the binary and a disk
// directory can replace it.
package catalog

import (
	"bytes"
	"context"
	"embed"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	apperrors "github.com/vytor/cyberquest/internal/errors"
	"github.com/vytor/cyberquest/internal/logger"
	"github.com/vytor/cyberquest/internal/quiz"
)

//go:embed quizzes/*.yaml
var embeddedFS embed.FS

// Topics covered by the site.
const (
	TopicPasswords    = "passwords"
	TopicPhishing     = "phishing"
	TopicSocialMedia  = "social-media"
	TopicDeviceSafety = "device-safety"
)

const maxConcurrentParse = 4

// Quiz is one authored quiz.
type Quiz struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Topic       string          `json:"topic" yaml:"topic"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Questions   []quiz.Question `json:"questions" yaml:"questions"`
}

// Validate checks the quiz and all of its questions.
func (q Quiz) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return apperrors.NewInvalidConfigurationError("quiz id is required")
	}
	if strings.TrimSpace(q.Title) == "" {
		return apperrors.NewInvalidConfigurationError(fmt.Sprintf("quiz %q: title is required", q.ID))
	}
	if err := quiz.ValidateQuestions(q.Questions); err != nil {
		return fmt.Errorf("quiz %q: %w", q.ID, err)
	}
	return nil
}

// Entry is the listing view of a quiz.
type Entry struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Topic         string `json:"topic"`
	Description   string `json:"description,omitempty"`
	QuestionCount int    `json:"questionCount"`
}

// Catalog is an immutable set of validated quizzes.
type Catalog struct {
	quizzes map[string]Quiz
	order   []string
}

// New builds a catalog from already parsed quizzes.
func New(quizzes ...Quiz) (*Catalog, error) {
	c := &Catalog{quizzes: make(map[string]Quiz, len(quizzes))}
	for _, q := range quizzes {
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.quizzes[q.ID]; dup {
			return nil, apperrors.NewInvalidConfigurationError(fmt.Sprintf("quiz id %q is defined twice", q.ID))
		}
		c.quizzes[q.ID] = q
		c.order = append(c.order, q.ID)
	}
	if len(c.order) == 0 {
		return nil, apperrors.NewInvalidConfigurationError("catalog has no quizzes")
	}
	sort.Strings(c.order)
	return c, nil
}

// Get returns the quiz with the given id.
func (c *Catalog) Get(id string) (Quiz, error) {
	q, ok := c.quizzes[id]
	if !ok {
		return Quiz{}, apperrors.NewNotFoundError("quiz", id)
	}
	return q, nil
}

// List returns every quiz ordered by id.
func (c *Catalog) List() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		q := c.quizzes[id]
		out = append(out, Entry{
			ID:            q.ID,
			Title:         q.Title,
			Topic:         q.Topic,
			Description:   q.Description,
			QuestionCount: len(q.Questions),
		})
	}
	return out
}

// Len returns the number of quizzes.
func (c *Catalog) Len() int { return len(c.order) }

// Parse decodes and validates a single quiz document.
func Parse(data []byte) (Quiz, error) {
	var q Quiz
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&q); err != nil {
		return Quiz{}, apperrors.NewInvalidConfigurationError("decode quiz: " + err.Error())
	}
	if err := q.Validate(); err != nil {
		return Quiz{}, err
	}
	return q, nil
}

// Load returns the quizzes from dir when it is set, or the embedded set.
func Load(ctx context.Context, dir string) (*Catalog, error) {
	log := logger.FromContext(ctx).WithPrefix("catalog")
	if dir != "" {
		log.Info("loading quizzes from %s", dir)
		return LoadDir(ctx, dir)
	}
	log.Info("loading embedded quizzes")
	return LoadFS(ctx, embeddedFS, "quizzes")
}

// LoadDir parses every quiz file in dir.
func LoadDir(ctx context.Context, dir string) (*Catalog, error) {
	return LoadFS(ctx, os.DirFS(dir), ".")
}

// Embedded returns the built-in catalog.
func Embedded(ctx context.Context) (*Catalog, error) {
	return LoadFS(ctx, embeddedFS, "quizzes")
}

// LoadFS parses every .yaml/.yml file directly under root. Problems in
// individual files are all reported in the returned error.
func LoadFS(ctx context.Context, fsys fs.FS, root string) (*Catalog, error) {
	log := logger.FromContext(ctx).WithPrefix("catalog")

	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("read quiz directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch path.Ext(e.Name()) {
		case ".yaml", ".yml":
			files = append(files, path.Join(root, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, apperrors.NewInvalidConfigurationError("no quiz files found")
	}

	quizzes := make([]Quiz, len(files))
	problems := make([]error, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentParse)
	var mu sync.Mutex
	parsed := 0
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				problems[i] = fmt.Errorf("%s: %w", name, err)
				return nil
			}
			q, err := Parse(data)
			if err != nil {
				problems[i] = fmt.Errorf("%s: %w", name, err)
				return nil
			}
			quizzes[i] = q
			mu.Lock()
			parsed++
			mu.Unlock()
			log.Debug("parsed %s: quiz=%s questions=%d", name, q.ID, len(q.Questions))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := stderrors.Join(problems...); err != nil {
		log.Error("%d of %d quiz files are invalid", len(files)-parsed, len(files))
		return nil, err
	}

	c, err := New(quizzes...)
	if err != nil {
		return nil, err
	}
	log.Info("loaded %d quizzes", c.Len())
	return c, nil
}

// Package seed loads the mock catalogue the service starts with: articles
// as markdown files with YAML front matter and users as a YAML list.
package seed

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/techblog-api/internal/models"
	"github.com/techblog-api/internal/repository"
)

//go:embed data
var embedded embed.FS

const (
	usersFile   = "users.yaml"
	articlesDir = "articles"
)

// Data is a loaded catalogue
type Data struct {
	Articles []*models.Article
	Users    []*models.User
}

// Default returns the catalogue compiled into the binary
func Default() (*Data, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded seed: %w", err)
	}
	return Load(sub)
}

// LoadDir reads a catalogue from dir, which must have the same layout as
// the embedded one. An empty dir selects the embedded catalogue.
func LoadDir(dir string) (*Data, error) {
	if dir == "" {
		return Default()
	}
	return Load(os.DirFS(dir))
}

// Load reads users.yaml and articles/*.md from fsys. Articles keep
// filename order.
func Load(fsys fs.FS) (*Data, error) {
	users, err := loadUsers(fsys)
	if err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(fsys, articlesDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", articlesDir, err)
	}

	data := &Data{Users: users}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		name := path.Join(articlesDir, entry.Name())
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		article, err := ParseArticle(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		data.Articles = append(data.Articles, article)
	}
	return data, nil
}

func loadUsers(fsys fs.FS) ([]*models.User, error) {
	raw, err := fs.ReadFile(fsys, usersFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", usersFile, err)
	}
	var users []*models.User
	if err := yaml.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode %s: %w", usersFile, err)
	}
	for i, u := range users {
		if u.ID == 0 || u.Username == "" {
			return nil, fmt.Errorf("%s: entry %d needs id and username", usersFile, i)
		}
		if !models.ValidRoles[u.Role] {
			return nil, fmt.Errorf("%s: user %q has unknown role %q", usersFile, u.Username, u.Role)
		}
	}
	return users, nil
}

// ParseArticle decodes one markdown document. The front matter carries the
// article fields and the body becomes its content.
func ParseArticle(source []byte) (*models.Article, error) {
	var article models.Article
	body, err := frontmatter.Parse(bytes.NewReader(source), &article)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if article.ID == 0 {
		return nil, fmt.Errorf("front matter is missing id")
	}

	article.Content = strings.TrimSpace(string(body))
	if article.Status == "" {
		article.Status = models.StatusPublished
	}
	if !models.ValidStatuses[article.Status] {
		return nil, fmt.Errorf("unknown status %q", article.Status)
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}
	if article.Comments == nil {
		article.Comments = []models.Comment{}
	}
	return &article, nil
}

// Apply inserts the catalogue into empty repositories
func Apply(ctx context.Context, repos *repository.Repositories, data *Data) error {
	for _, u := range data.Users {
		if err := repos.User.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
	}
	for _, a := range data.Articles {
		if err := repos.Article.Create(ctx, a); err != nil {
			return fmt.Errorf("seed article %d: %w", a.ID, err)
		}
	}
	return nil
}

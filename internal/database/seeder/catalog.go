package seeder

import (
	_ "embed"
	"fmt"
	"strings"

	"career-match/internal/domain/job"
	"career-match/internal/domain/resource"
	"career-match/internal/domain/user"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type Catalog struct {
	Jobs      []CatalogJob      `yaml:"jobs"`
	Resources []CatalogResource `yaml:"resources"`
}

type CatalogJob struct {
	Title           string   `yaml:"title"`
	Company         string   `yaml:"company"`
	Location        string   `yaml:"location"`
	Remote          bool     `yaml:"remote"`
	RequiredSkills  []string `yaml:"requiredSkills"`
	ExperienceLevel string   `yaml:"experienceLevel"`
	JobType         string   `yaml:"jobType"`
	Description     string   `yaml:"description"`
}

type CatalogResource struct {
	Title         string   `yaml:"title"`
	Platform      string   `yaml:"platform"`
	URL           string   `yaml:"url"`
	RelatedSkills []string `yaml:"relatedSkills"`
	Cost          string   `yaml:"cost"`
	Description   string   `yaml:"description"`
}

// DefaultCatalog parses the catalogue shipped with the binary.
func DefaultCatalog() (Catalog, error) {
	return ParseCatalog(catalogYAML)
}

func ParseCatalog(b []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) Validate() error {
	seenJobs := map[string]struct{}{}
	for i, j := range c.Jobs {
		if strings.TrimSpace(j.Title) == "" || strings.TrimSpace(j.Company) == "" {
			return fmt.Errorf("catalog job %d: title and company are required", i)
		}
		if !job.IsValidType(j.JobType) {
			return fmt.Errorf("catalog job %q: invalid job type %q", j.Title, j.JobType)
		}
		key := j.Title + "|" + j.Company
		if _, ok := seenJobs[key]; ok {
			return fmt.Errorf("catalog job %q at %q is duplicated", j.Title, j.Company)
		}
		seenJobs[key] = struct{}{}
	}

	seenURLs := map[string]struct{}{}
	for i, r := range c.Resources {
		if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.URL) == "" {
			return fmt.Errorf("catalog resource %d: title and url are required", i)
		}
		if !resource.IsValidCost(r.Cost) {
			return fmt.Errorf("catalog resource %q: invalid cost %q", r.Title, r.Cost)
		}
		if _, ok := seenURLs[r.URL]; ok {
			return fmt.Errorf("catalog resource url %q is duplicated", r.URL)
		}
		seenURLs[r.URL] = struct{}{}
	}
	return nil
}

func (j CatalogJob) skills() []string {
	return user.CleanList(j.RequiredSkills)
}

func (r CatalogResource) skills() []string {
	return user.CleanList(r.RelatedSkills)
}

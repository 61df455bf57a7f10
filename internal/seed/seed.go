// Package seed loads the Statistics catalog into a store. Every insert is a
// get-or-create, so running it again never duplicates rows.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/pkg/logger"
)

//go:embed catalog.yaml
var catalogYAML []byte

// DepartmentEntry is a department in the catalog
type DepartmentEntry struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// CourseEntry references its department by code
type CourseEntry struct {
	Code        string `yaml:"code"`
	Department  string `yaml:"department"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ProfessorEntry references its department by code
type ProfessorEntry struct {
	Name       string `yaml:"name"`
	Department string `yaml:"department"`
}

// ReviewEntry references its course by code and its professor by name
type ReviewEntry struct {
	Course     string `yaml:"course"`
	Professor  string `yaml:"professor"`
	Rating     int    `yaml:"rating"`
	Workload   int    `yaml:"workload"`
	Difficulty int    `yaml:"difficulty"`
	Comment    string `yaml:"comment"`
}

// Catalog is the full seed document
type Catalog struct {
	Departments []DepartmentEntry `yaml:"departments"`
	Courses     []CourseEntry     `yaml:"courses"`
	Professors  []ProfessorEntry  `yaml:"professors"`
	Reviews     []ReviewEntry     `yaml:"reviews"`
}

// Result counts the rows created by a run; Skipped counts reviews whose course or
// professor is not in the catalog.
type Result struct {
	Departments int
	Courses     int
	Professors  int
	Reviews     int
	Skipped     int
}

// DefaultCatalog returns the embedded Statistics catalog
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog decodes a catalog document
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error parsing seed catalog: %w", err)
	}
	return &c, nil
}

// Run applies the catalog. Failures on single entries are collected and the run
// continues with the remaining entries.
func Run(ctx context.Context, repos *repositories.Repositories, catalog *Catalog) (Result, error) {
	var (
		res      Result
		finalErr error
	)
	logger.Info().Msg("Checking/Creating seed data...")

	departments := make(map[string]*models.Department, len(catalog.Departments))
	for _, entry := range catalog.Departments {
		d := &models.Department{Code: entry.Code, Name: entry.Name}
		created, err := repos.DepartmentRepository.GetOrCreate(ctx, d)
		if err != nil {
			logger.Error().Err(err).Str("code", entry.Code).Msg("Error creating department")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if created {
			res.Departments++
		}
		departments[d.Code] = d
	}

	courses := make(map[string]*models.Course, len(catalog.Courses))
	for _, entry := range catalog.Courses {
		dept, ok := departments[entry.Department]
		if !ok {
			err := fmt.Errorf("course %s references unknown department %s", entry.Code, entry.Department)
			logger.Error().Err(err).Msg("Error creating course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		c := &models.Course{Code: entry.Code, Title: entry.Title, DepartmentID: dept.ID}
		if entry.Description != "" {
			description := entry.Description
			c.Description = &description
		}
		created, err := repos.CourseRepository.GetOrCreate(ctx, c)
		if err != nil {
			logger.Error().Err(err).Str("code", entry.Code).Msg("Error creating course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if created {
			res.Courses++
			logger.Debug().Str("code", c.Code).Str("title", c.Title).Msg("Created course")
		}
		courses[c.Code] = c
	}

	professors := make(map[string]*models.Professor, len(catalog.Professors))
	for _, entry := range catalog.Professors {
		p := &models.Professor{Name: entry.Name}
		if dept, ok := departments[entry.Department]; ok {
			p.DepartmentID = &dept.ID
		}
		created, err := repos.ProfessorRepository.GetOrCreateByName(ctx, p)
		if err != nil {
			logger.Error().Err(err).Str("name", entry.Name).Msg("Error creating professor")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if created {
			res.Professors++
			logger.Debug().Str("name", p.Name).Str("slug", p.Slug).Msg("Created professor")
		}
		professors[p.Name] = p
	}

	for _, entry := range catalog.Reviews {
		course, ok := courses[entry.Course]
		if !ok {
			logger.Warn().Str("course", entry.Course).Msg("Skipping review for course not in catalog")
			res.Skipped++
			continue
		}
		r := &models.Review{
			CourseID:   course.ID,
			Rating:     entry.Rating,
			Workload:   entry.Workload,
			Difficulty: entry.Difficulty,
		}
		if entry.Professor != "" {
			p, ok := professors[entry.Professor]
			if !ok {
				logger.Warn().Str("professor", entry.Professor).Msg("Skipping review for professor not in catalog")
				res.Skipped++
				continue
			}
			r.ProfessorID = &p.ID
		}
		comment := entry.Comment
		r.Comment = &comment

		created, err := repos.ReviewRepository.GetOrCreateForPair(ctx, r)
		if err != nil {
			logger.Error().Err(err).Str("course", entry.Course).Msg("Error creating review")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if created {
			res.Reviews++
		}
	}

	logger.Info().
		Int("departments", res.Departments).
		Int("courses", res.Courses).
		Int("professors", res.Professors).
		Int("reviews", res.Reviews).
		Int("skipped", res.Skipped).
		Msg("Seed data applied")
	return res, finalErr
}

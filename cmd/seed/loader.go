package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"smartdine/internal/domain/entity"
	"smartdine/internal/errors"
	"smartdine/internal/util"
)

// defaultCatalogFiles are the city files loaded when --files is not given.
var defaultCatalogFiles = []string{
	"Baltimore.json",
	"Annapolis.json",
	"Frederick.json",
	"OC.json",
}

// restaurantRecord is one entry of a city catalog file.
type restaurantRecord struct {
	Name    string          `json:"name"`
	City    string          `json:"city"`
	Cuisine string          `json:"cuisine"`
	Price   string          `json:"price"`
	Address string          `json:"address"`
	Tables  int             `json:"tables"`
	Hours   json.RawMessage `json:"hours"`
}

type loadReport struct {
	Loaded  []string
	Missing []string
	Failed  map[string]error
}

// loadCatalog reads every file under dataDir. Missing files are skipped with a warning and
// unparsable files are reported and skipped; neither aborts the run.
func loadCatalog(logger *slog.Logger, dataDir string, files []string) ([]*entity.Restaurant, loadReport) {
	report := loadReport{Failed: make(map[string]error)}
	var restaurants []*entity.Restaurant

	for _, name := range files {
		path := filepath.Join(dataDir, name)

		if _, err := os.Stat(path); err != nil {
			logger.Warn("Catalog file missing, skipping", slog.String("file", name))
			report.Missing = append(report.Missing, name)

			continue
		}

		entries, digest, err := readCatalogFile(path)
		if err != nil {
			logger.Error("Failed to parse catalog file", slog.String("file", name), slog.Any("error", err))
			report.Failed[name] = err

			continue
		}

		logger.Info("Catalog file loaded",
			slog.String("file", name),
			slog.Int("restaurants", len(entries)),
			slog.String("size", digest.HumanSize()),
			slog.String("sha256", digest.SHA256),
		)

		for _, record := range entries {
			restaurants = append(restaurants, record.toEntity(logger))
		}
		report.Loaded = append(report.Loaded, name)
	}

	return restaurants, report
}

func readCatalogFile(path string) ([]restaurantRecord, util.FileDigest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, util.FileDigest{}, errors.Wrap(err, "failed to read catalog file")
	}

	var entries []restaurantRecord
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, util.FileDigest{}, errors.Wrapf(err, "invalid catalog JSON in %s", filepath.Base(path))
	}

	return entries, util.DigestBytes(raw), nil
}

// toEntity keeps restaurants whose hours do not decode; they are stored without hours
// and are never reported open.
func (r restaurantRecord) toEntity(logger *slog.Logger) *entity.Restaurant {
	restaurant := &entity.Restaurant{
		Name:    strings.TrimSpace(r.Name),
		City:    strings.TrimSpace(r.City),
		Cuisine: strings.TrimSpace(r.Cuisine),
		Price:   r.Price,
		Address: r.Address,
		Tables:  r.Tables,
	}

	if len(r.Hours) == 0 || string(r.Hours) == "null" {
		return restaurant
	}

	var hours entity.WeeklyHours
	if err := json.Unmarshal(r.Hours, &hours); err != nil {
		logger.Warn("Unreadable hours, storing restaurant without hours",
			slog.String("restaurant", restaurant.Name), slog.Any("error", err))

		return restaurant
	}
	restaurant.Hours = hours

	return restaurant
}

// splitFiles parses the comma separated --files value.
func splitFiles(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return defaultCatalogFiles
	}

	var files []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			files = append(files, name)
		}
	}

	return files
}

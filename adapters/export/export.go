// Package export writes saved recommendations as downloadable JSON documents.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"aws-recommender/core/types"
	"aws-recommender/internal/errors"
)

const fileNamePrefix = "aws-recommendation-"

// FileName returns aws-recommendation-YYYY-MM-DD.json for the UTC date of t
func FileName(t time.Time) string {
	return fileNamePrefix + t.UTC().Format("2006-01-02") + ".json"
}

// Marshal encodes a record as JSON indented by two spaces
func Marshal(record *types.StoredRecommendation) ([]byte, error) {
	if record == nil {
		return nil, errors.NotFound("recommendation", "lastRecommendation")
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, errors.Export("encode recommendation", err)
	}
	return data, nil
}

// Write encodes a record to w
func Write(w io.Writer, record *types.StoredRecommendation) error {
	data, err := Marshal(record)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.Export("write recommendation", err)
	}
	return nil
}

// WriteFile writes a record into dir, named for now, and returns the path
func WriteFile(dir string, record *types.StoredRecommendation, now time.Time) (string, error) {
	data, err := Marshal(record)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Export(fmt.Sprintf("create export directory %s", dir), err)
	}

	path := filepath.Join(dir, FileName(now))
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", errors.Export("write recommendation", err)
	}
	return path, nil
}

package apis

import (
	"fmt"
	"slices"
)

// SourceTypes are the column types the CSV importer can convert. An empty sourceType reads as string.
var SourceTypes = []string{"", "string", "int", "float", "bool", "date", "datetime", "uuid", "list"}

// DataMapping binds CSV columns of one dataset to directory entry fields.
type DataMapping struct {
	Kind          string         `json:"kind" example:"DataMapping" yaml:"kind"`
	Version       string         `json:"version" example:"v1" yaml:"version"`
	Metadata      Metadata       `json:"metadata" yaml:"metadata"`
	Dataset       string         `json:"dataset" example:"breweries" yaml:"dataset"`
	FieldMappings []FieldMapping `json:"fieldMappings" yaml:"fieldMappings"`
	DateFormat    string         `json:"dateFormat" example:"2006-01-02T15:04:05Z07:00" yaml:"dateFormat"`
}

type Metadata struct {
	Name        string `json:"name" example:"Brewery directory" yaml:"name"`
	Description string `json:"description" example:"Breweries and nearby attractions, one row per listing" yaml:"description"`
}

// FieldMapping copies one source column into Target, a dotted path into domain.Entry.
type FieldMapping struct {
	Source     string `json:"source" example:"place_id" yaml:"source"`
	SourceType string `json:"sourceType" example:"string" yaml:"sourceType"`
	Target     string `json:"target" example:"PlaceID" yaml:"target"`
	Required   bool   `json:"required" example:"false" yaml:"required"`
}

func (dm *DataMapping) Validate() error {
	if dm.Kind == "" {
		return fmt.Errorf("kind is required")
	}
	if dm.Version == "" {
		return fmt.Errorf("version is required")
	}
	if dm.Metadata.Name == "" {
		return fmt.Errorf("metadata.name is required")
	}
	if dm.Dataset == "" {
		return fmt.Errorf("dataset is required")
	}
	if len(dm.FieldMappings) == 0 {
		return fmt.Errorf("at least one field mapping is required")
	}
	targets := make(map[string]string, len(dm.FieldMappings))
	for i, fm := range dm.FieldMappings {
		if fm.Source == "" {
			return fmt.Errorf("fieldMappings[%d] must have source defined", i)
		}
		if fm.Target == "" {
			return fmt.Errorf("fieldMappings[%d] (%s) must have target defined", i, fm.Source)
		}
		if !slices.Contains(SourceTypes, fm.SourceType) {
			return fmt.Errorf("fieldMappings[%d] (%s) has unsupported sourceType %q", i, fm.Source, fm.SourceType)
		}
		if prev, ok := targets[fm.Target]; ok {
			return fmt.Errorf("fieldMappings[%d] (%s) maps to %s, already mapped from %s", i, fm.Source, fm.Target, prev)
		}
		targets[fm.Target] = fm.Source
	}
	return nil
}

type MappingError struct {
	Message string `json:"message" example:"missing required column: name"`
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping error: %s", e.Message)
}

package reader

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/pkg/apis"
)

// EntryMapper maps CSV rows onto domain.Entry fields named by a DataMapping.
type EntryMapper struct {
	cfg *apis.DataMapping
}

func NewEntryMapper(cfg *apis.DataMapping) *EntryMapper {
	return &EntryMapper{
		cfg: cfg,
	}
}

func (m *EntryMapper) Map(record map[string]string, opt *MappingOptions) (domain.Entry, error) {
	if err := m.cfg.Validate(); err != nil {
		return domain.Entry{}, err
	}
	strict := opt != nil && opt.Strict

	entry := domain.Entry{}
	val := reflect.ValueOf(&entry).Elem()

	for _, fm := range m.cfg.FieldMappings {
		sourceVal, present := record[fm.Source]
		if fm.Required && (!present || strings.TrimSpace(sourceVal) == "") {
			return domain.Entry{}, &apis.MappingError{Message: fmt.Sprintf("missing source field: %s", fm.Source)}
		}

		err := SetField(val, fm.Target, sourceVal, fm.SourceType, m.cfg.DateFormat)
		if err != nil && (fm.Required || strict) {
			return domain.Entry{}, err
		}
	}
	return entry, nil
}

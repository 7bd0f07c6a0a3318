package mappers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	derr "github.com/ozzus/hotetec-gateway/internal/domain/errors"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/hotetec/dto"
)

// DateLayout is the provider's dd/mm/yyyy date format.
const DateLayout = "02/01/2006"

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}

// CheckError returns the provider-reported error carried by the envelope, if any.
func CheckError(fields dto.ErrorFields) error {
	if !fields.HasError() {
		return nil
	}
	return derr.Provider(fields.Code, fields.Text)
}

func parseFloat(field, value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", field, value, err)
	}
	return f, nil
}

func parseInt(field, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", field, value, err)
	}
	return n, nil
}

func parseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("parse %s %q: %w", field, value, err)
	}
	return &t, nil
}

// fieldParser accumulates the first parse failure so long field lists read
// as a flat table.
type fieldParser struct {
	err error
}

func (p *fieldParser) decimal(field, value string) float64 {
	if p.err != nil {
		return 0
	}
	f, err := parseFloat(field, value)
	p.err = err
	return f
}

func (p *fieldParser) integer(field, value string) int {
	if p.err != nil {
		return 0
	}
	n, err := parseInt(field, value)
	p.err = err
	return n
}

func (p *fieldParser) day(field, value string) *time.Time {
	if p.err != nil {
		return nil
	}
	t, err := parseDate(field, value)
	p.err = err
	return t
}

func toStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

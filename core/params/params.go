package params

import (
	"fmt"
	"strconv"
	"strings"

	"event-hub/core/constants"
)

// QueryParams holds offset pagination read from ?from=&size=.
type QueryParams struct {
	From int
	Size int
}

func NewQueryParams(from, size string) (QueryParams, error) {
	p := QueryParams{From: constants.DefaultPageFrom, Size: constants.DefaultPageSize}

	if from != "" {
		v, err := strconv.Atoi(from)
		if err != nil || v < 0 {
			return p, fmt.Errorf("from must be a non-negative integer")
		}
		p.From = v
	}
	if size != "" {
		v, err := strconv.Atoi(size)
		if err != nil || v <= 0 || v > constants.MaxPageSize {
			return p, fmt.Errorf("size must be between 1 and %d", constants.MaxPageSize)
		}
		p.Size = v
	}
	return p, nil
}

// ParseInt64List accepts repeated values and comma separated lists.
func ParseInt64List(values []string) ([]int64, error) {
	out := make([]int64, 0, len(values))
	for _, raw := range SplitList(values) {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", raw)
		}
		out = append(out, v)
	}
	return out, nil
}

// SplitList flattens "a,b" style values and drops empty entries.
func SplitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ParseOptionalBool returns nil for an empty value.
func ParseOptionalBool(value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("invalid boolean %q", value)
	}
	return &b, nil
}

package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"deliveryfilter/internal/core/domain/model/order"
	"deliveryfilter/internal/core/ports"
	"deliveryfilter/internal/pkg/errs"
)

const resultFileMode = 0o644

// FileOrderRepository implements ports.OrderRepository on the local filesystem.
// Each call reads or writes a whole file and keeps no handle open afterwards.
type FileOrderRepository struct {
	logger   *slog.Logger
	location *time.Location
}

// NewFileOrderRepository creates a repository that reads timestamps without an
// offset in location (time.Local when nil).
func NewFileOrderRepository(logger *slog.Logger, location *time.Location) *FileOrderRepository {
	if location == nil {
		location = time.Local
	}
	return &FileOrderRepository{
		logger:   logger.With("component", "order_repository"),
		location: location,
	}
}

// Load reads the candidates of path, choosing the format by extension.
//
// In text mode a malformed line is logged and skipped; the rest of the file is
// still read. In JSON mode the document is decoded in one pass and any
// decoding failure rejects the whole file.
func (r *FileOrderRepository) Load(ctx context.Context, path, separator string) ([]order.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if path == "" {
		return nil, errs.NewValueIsRequiredError("input file path")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewObjectNotFoundErrorWithCause("input file", path, err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if isTextFile(path) {
		return r.loadText(path, data, separator), nil
	}
	return r.loadJSON(path, data)
}

// Save writes one Order.String() line per order, replacing path.
func (r *FileOrderRepository) Save(ctx context.Context, orders []*order.Order, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(orders) == 0 {
		return ports.ErrNothingToSave
	}

	if path == "" {
		return ports.ErrResultPathIsRequired
	}

	var b strings.Builder
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		b.WriteString(o.String())
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), resultFileMode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	r.logger.Info("saved orders", "count", len(orders), "path", path)
	return nil
}

func (r *FileOrderRepository) loadText(path string, data []byte, separator string) []order.Candidate {
	if separator == "" {
		separator = DefaultSeparator
	}

	name := filepath.Base(path)
	lines := splitLines(data)
	candidates := make([]order.Candidate, 0, len(lines))

	for i, line := range lines {
		source := fmt.Sprintf("%s:%d", name, i+1)

		if strings.TrimSpace(line) == "" {
			r.logger.Warn("skipping empty line", "source", source)
			continue
		}

		c, err := parseLine(line, separator, source, r.location)
		if err != nil {
			r.logger.Warn("skipping line", "source", source, "line", line, "error", err)
			continue
		}
		candidates = append(candidates, c)
	}

	return candidates
}

func (r *FileOrderRepository) loadJSON(path string, data []byte) ([]order.Candidate, error) {
	var dtos []OrderDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("input file", fmt.Errorf("%s: %w", path, err))
	}

	name := filepath.Base(path)
	candidates := make([]order.Candidate, 0, len(dtos))
	for i, dto := range dtos {
		c, err := toCandidate(dto, fmt.Sprintf("%s[%d]", name, i), r.location)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}

	return candidates, nil
}

var _ ports.OrderRepository = (*FileOrderRepository)(nil)

func isTextFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".txt")
}

package export

import (
	"context"

	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/fileutil"
	"github.com/custodia-labs/safedrive/internal/logger"
)

var log = logger.Component("export")

// writeFile stores rendered export data at path.
func writeFile(ctx context.Context, format domain.ExportFormat, path string, data []byte) error {
	op := "export " + format.String()
	if err := ctx.Err(); err != nil {
		return domain.NewIOFailure(op, path, err)
	}
	if err := fileutil.WriteAtomic(path, data, 0o644); err != nil {
		return domain.NewIOFailure(op, path, err)
	}
	log.Debug("wrote %d bytes of %s to %s", len(data), format, path)
	return nil
}

package ports

import "context"

// Logger — минимальный контракт логгера для внешних слоёв.
// Контекст нужен для корреляции по request_id/trace_id.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}

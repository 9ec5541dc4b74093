package querying

import "errors"

// Erros específicos do contexto de consulta
var (
	// ErrNotLoaded indica que nenhum snapshot foi publicado ainda
	ErrNotLoaded = errors.New("no data loaded")

	// ErrRefreshFailed indica que a recarga falhou e o snapshot anterior
	// foi mantido
	ErrRefreshFailed = errors.New("cache refresh failed")
)

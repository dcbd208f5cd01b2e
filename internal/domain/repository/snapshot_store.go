package repository

import "context"

// SnapshotStore puerto del espejo clave-valor donde cada store guarda su snapshot completo.
// Equivale al almacenamiento local por perfil: una clave por store, valor JSON.
type SnapshotStore interface {
	// Load decodifica el valor de key en dest. Devuelve false (sin error) si la clave no existe.
	// Un valor ilegible devuelve un error que envuelve domain.ErrCorruptSnapshot.
	Load(ctx context.Context, key string, dest any) (bool, error)
	// Save reemplaza el valor de key con la serialización JSON de value.
	Save(ctx context.Context, key string, value any) error
	// Delete elimina key; no falla si no existe.
	Delete(ctx context.Context, key string) error
}

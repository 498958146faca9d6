package kv

import "context"

// Store es un almacén clave/valor de bytes. Get devuelve ok=false si la clave no existe.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Update lee, transforma y escribe key de forma atómica frente a otros
	// escritores del mismo almacén (otros procesos incluidos). fn puede
	// llamarse más de una vez y no debe tener efectos fuera de su retorno.
	// Si fn devuelve nil sin error no se escribe nada.
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}

// UpdateFunc recibe el valor actual (ok=false si no existe) y devuelve el nuevo.
type UpdateFunc func(cur []byte, ok bool) ([]byte, error)

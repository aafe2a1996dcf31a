// Package storage define el gateway de persistencia: un almacén
// clave/valor de bytes que la aplicación lee una vez al arrancar y escribe
// después de cada mutación.
//
// Las claves replican los blobs del almacenamiento local de la app original:
// perfil, catálogo plantilla e historial de planillas, cada uno como JSON
// UTF-8 independiente.
package storage

import "context"

// Claves del gateway. Una clave ausente significa "todavía no hay datos".
const (
	KeyConfig   = "todo_barras_config"
	KeyTemplate = "todo_barras_template"
	KeyEvents   = "todo_barras_events"
)

// Gateway puerto de persistencia clave/valor.
type Gateway interface {
	// Get devuelve el valor y ok=false si la clave no existe.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Put guarda o reemplaza el valor de la clave.
	Put(ctx context.Context, key string, value []byte) error
	// Close libera los recursos del almacén.
	Close() error
}

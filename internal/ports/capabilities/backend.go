package capabilities

// Backend responde si hay un backend remoto configurado.
// Se consulta en cada operación: la respuesta puede cambiar en caliente.
type Backend interface {
	RemoteConfigured() bool
}

// BackendFunc adapta una función a Backend.
type BackendFunc func() bool

func (f BackendFunc) RemoteConfigured() bool { return f() }

// Never es el Backend de los entornos sin remoto (tests, dev local).
var Never Backend = BackendFunc(func() bool { return false })

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrPlacementInFlight  = errors.New("ya hay un pedido en proceso")
	ErrCancelWindowClosed = errors.New("la ventana de cancelación expiró")
	ErrCorruptSnapshot    = errors.New("snapshot persistido ilegible")
)

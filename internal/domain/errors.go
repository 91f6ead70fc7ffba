package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// UnknownProductError indica que un pedido referencia un producto inexistente.
// Lleva el ID ofensor para que la capa de presentación arme un mensaje preciso.
type UnknownProductError struct {
	ProductID string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("producto %s no existe", e.ProductID)
}

// Is permite detectarlo con errors.Is(err, domain.ErrNotFound).
func (e *UnknownProductError) Is(target error) bool {
	return target == ErrNotFound
}

// UnknownOrderError indica una operación sobre un pedido inexistente.
type UnknownOrderError struct {
	OrderID string
}

func (e *UnknownOrderError) Error() string {
	return fmt.Sprintf("pedido %s no existe", e.OrderID)
}

func (e *UnknownOrderError) Is(target error) bool {
	return target == ErrNotFound
}

// /internal/store/fallback.go
package store

import (
	"errors"
	"log/slog"

	"github.com/rjdoces/rj-doces/internal/model"
)

// ComFallback envolve um OrderStore primário (o backend) com um reserva
// local. Se a gravação no primário falhar, o pedido é confirmado no reserva
// e o checkout segue: um checkout concluído nunca se perde em silêncio.
// Leituras tentam o primário e caem para o reserva em caso de erro, para que
// pedidos confirmados localmente continuem visíveis.
type ComFallback struct {
	primario OrderStore
	reserva  OrderStore
}

func NewComFallback(primario, reserva OrderStore) *ComFallback {
	return &ComFallback{primario: primario, reserva: reserva}
}

func (s *ComFallback) CriarPedido(p model.Pedido) error {
	err := s.primario.CriarPedido(p)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrIDDuplicado) {
		// Violação de invariante, não indisponibilidade: propaga para o
		// chamador gerar outro id.
		return err
	}

	slog.Warn("falha ao gravar pedido no backend, confirmando no store local",
		"pedido", p.ID, "erro", err)
	return s.reserva.CriarPedido(p)
}

func (s *ComFallback) Pedidos() ([]model.Pedido, error) {
	pedidos, err := s.primario.Pedidos()
	if err != nil {
		slog.Warn("falha ao listar pedidos no backend, usando store local", "erro", err)
		return s.reserva.Pedidos()
	}
	return pedidos, nil
}

func (s *ComFallback) Pedido(id string) (model.Pedido, error) {
	pedido, err := s.primario.Pedido(id)
	if err != nil {
		// Inclui ErrNaoEncontrado: o pedido pode ter sido confirmado
		// apenas localmente.
		return s.reserva.Pedido(id)
	}
	return pedido, nil
}

func (s *ComFallback) AtualizarStatus(id string, status model.StatusPedido) error {
	err := s.primario.AtualizarStatus(id, status)
	if err == nil {
		return nil
	}
	var valErr *model.ValidationError
	if errors.As(err, &valErr) {
		return err
	}
	return s.reserva.AtualizarStatus(id, status)
}

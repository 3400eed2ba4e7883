package store

import (
	"errors"
	"testing"

	"github.com/rjdoces/rj-doces/internal/model"
)

// storeIndisponivel simula um backend fora do ar.
type storeIndisponivel struct{}

var errBackendFora = errors.New("connection refused")

func (s *storeIndisponivel) CriarPedido(model.Pedido) error { return errBackendFora }
func (s *storeIndisponivel) Pedidos() ([]model.Pedido, error) {
	return nil, errBackendFora
}
func (s *storeIndisponivel) Pedido(string) (model.Pedido, error) {
	return model.Pedido{}, errBackendFora
}
func (s *storeIndisponivel) AtualizarStatus(string, model.StatusPedido) error {
	return errBackendFora
}

func TestFallbackConfirmaLocalmente(t *testing.T) {
	local := NewMemory()
	s := NewComFallback(&storeIndisponivel{}, local)

	// A falha do backend não chega ao chamador: o checkout conclui.
	if err := s.CriarPedido(pedidoTeste("AAAAAAAA1")); err != nil {
		t.Fatalf("Checkout não pode se perder com o backend fora: %v", err)
	}

	// O pedido ficou no store local e continua legível pelo wrapper.
	pedido, err := s.Pedido("AAAAAAAA1")
	if err != nil {
		t.Fatalf("Pedido confirmado localmente deveria ser legível: %v", err)
	}
	if pedido.ID != "AAAAAAAA1" {
		t.Errorf("Pedido incorreto: %q", pedido.ID)
	}

	pedidos, err := s.Pedidos()
	if err != nil || len(pedidos) != 1 {
		t.Errorf("Listagem deveria cair para o store local: %v (%d pedidos)", err, len(pedidos))
	}

	if err := s.AtualizarStatus("AAAAAAAA1", model.StatusPreparando); err != nil {
		t.Errorf("Atualização de status deveria cair para o store local: %v", err)
	}
}

func TestFallbackPropagaIDDuplicado(t *testing.T) {
	primario := NewMemory()
	local := NewMemory()
	s := NewComFallback(primario, local)

	if err := s.CriarPedido(pedidoTeste("AAAAAAAA1")); err != nil {
		t.Fatalf("Erro inesperado: %v", err)
	}

	// Duplicidade é violação de invariante, não indisponibilidade: o
	// wrapper não pode "resolver" gravando no local.
	err := s.CriarPedido(pedidoTeste("AAAAAAAA1"))
	if !errors.Is(err, ErrIDDuplicado) {
		t.Fatalf("Esperava ErrIDDuplicado, obteve %v", err)
	}
	locais, _ := local.Pedidos()
	if len(locais) != 0 {
		t.Errorf("Pedido duplicado não deveria ir para o store local")
	}
}

func TestFallbackPrimarioSaudavel(t *testing.T) {
	primario := NewMemory()
	local := NewMemory()
	s := NewComFallback(primario, local)

	if err := s.CriarPedido(pedidoTeste("AAAAAAAA1")); err != nil {
		t.Fatalf("Erro inesperado: %v", err)
	}

	// Com o primário saudável, nada vai para o reserva.
	noPrimario, _ := primario.Pedidos()
	noLocal, _ := local.Pedidos()
	if len(noPrimario) != 1 || len(noLocal) != 0 {
		t.Errorf("Pedido deveria estar só no primário: primário=%d local=%d", len(noPrimario), len(noLocal))
	}
}

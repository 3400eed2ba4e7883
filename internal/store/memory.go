// /internal/store/memory.go
package store

import (
	"fmt"
	"sync"

	"github.com/rjdoces/rj-doces/internal/model"
)

// Memory implementa CatalogStore e OrderStore em memória. É o caminho "mock"
// da aplicação (o equivalente do localStorage no navegador) e também
// o destino do fallback local quando o banco está fora.
type Memory struct {
	mu       sync.RWMutex
	produtos []model.Produto
	pedidos  []model.Pedido
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Produtos() ([]model.Produto, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Produto, len(m.produtos))
	copy(out, m.produtos)
	return out, nil
}

func (m *Memory) SalvarProduto(p model.Produto) error {
	if p.Preco.IsNegative() {
		return &model.ValidationError{Campos: []string{"price"}}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.produtos {
		if m.produtos[i].ID == p.ID {
			m.produtos[i] = p
			return nil
		}
	}
	m.produtos = append(m.produtos, p)
	return nil
}

func (m *Memory) RemoverProduto(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.produtos {
		if m.produtos[i].ID == id {
			m.produtos = append(m.produtos[:i], m.produtos[i+1:]...)
			return nil
		}
	}
	// Ausente é no-op, não erro.
	return nil
}

func (m *Memory) CriarPedido(p model.Pedido) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.pedidos {
		if m.pedidos[i].ID == p.ID {
			return fmt.Errorf("pedido %s: %w", p.ID, ErrIDDuplicado)
		}
	}
	// Insere no início: a listagem sai do mais recente para o mais antigo.
	m.pedidos = append([]model.Pedido{clonePedido(p)}, m.pedidos...)
	return nil
}

func (m *Memory) Pedidos() ([]model.Pedido, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Pedido, 0, len(m.pedidos))
	for _, p := range m.pedidos {
		out = append(out, clonePedido(p))
	}
	return out, nil
}

func (m *Memory) Pedido(id string) (model.Pedido, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.pedidos {
		if p.ID == id {
			return clonePedido(p), nil
		}
	}
	return model.Pedido{}, fmt.Errorf("pedido %s: %w", id, ErrNaoEncontrado)
}

func (m *Memory) AtualizarStatus(id string, status model.StatusPedido) error {
	if !status.Valido() {
		return &model.ValidationError{Campos: []string{"status"}}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.pedidos {
		if m.pedidos[i].ID == id {
			m.pedidos[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("pedido %s: %w", id, ErrNaoEncontrado)
}

// clonePedido copia o pedido com os itens, para que o chamador não alcance o
// slice interno do store.
func clonePedido(p model.Pedido) model.Pedido {
	clone := p
	clone.Items = make([]model.ItemPedido, len(p.Items))
	copy(clone.Items, p.Items)
	return clone
}

// /internal/store/store.go
package store

import (
	"errors"

	"github.com/rjdoces/rj-doces/internal/model"
)

var (
	// ErrNaoEncontrado indica busca ou atualização com id desconhecido.
	// Nunca é fatal; o chamador trata como "não encontrado".
	ErrNaoEncontrado = errors.New("registro não encontrado")

	// ErrIDDuplicado indica tentativa de criar um pedido com id já usado.
	// Não deve acontecer com a geração aleatória de ids; é checado por
	// defesa e tratado como violação de invariante interna.
	ErrIDDuplicado = errors.New("id de pedido duplicado")
)

// CatalogStore guarda os produtos à venda. As duas implementações (memória e
// banco) são intercambiáveis e escolhidas na composição da aplicação.
type CatalogStore interface {
	// Produtos devolve todos os produtos em ordem de inserção.
	Produtos() ([]model.Produto, error)
	// SalvarProduto faz upsert por id: substitui se existir, senão anexa.
	// Preço negativo falha com ValidationError.
	SalvarProduto(p model.Produto) error
	// RemoverProduto apaga por id; id ausente é no-op, não erro.
	RemoverProduto(id string) error
}

// OrderStore guarda os pedidos. A coleção é conceitualmente append-only:
// depois de criado, só o status de um pedido muda.
type OrderStore interface {
	// CriarPedido insere no início da coleção (listagem do mais recente
	// para o mais antigo). Falha com ErrIDDuplicado se o id já existe.
	CriarPedido(p model.Pedido) error
	// Pedidos devolve todos os pedidos, mais recentes primeiro.
	Pedidos() ([]model.Pedido, error)
	// Pedido busca por id ou falha com ErrNaoEncontrado.
	Pedido(id string) (model.Pedido, error)
	// AtualizarStatus troca o status ou falha com ErrNaoEncontrado.
	// Qualquer status válido é aceito a partir de qualquer outro; não há
	// grafo de transições imposto (política permissiva documentada).
	AtualizarStatus(id string, status model.StatusPedido) error
}

// /internal/model/pedido.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusPedido define os possíveis status de um pedido.
type StatusPedido string

const (
	StatusNovo           StatusPedido = "Novo"
	StatusPreparando     StatusPedido = "Preparando"
	StatusSaiuEntrega    StatusPedido = "Saiu para Entrega"
	StatusProntoRetirada StatusPedido = "Pronto para Retirada"
	StatusConcluido      StatusPedido = "Concluído"
	StatusCancelado      StatusPedido = "Cancelado"
)

// Valido informa se o rótulo de status é conhecido. Transições entre status
// válidos não são restringidas; qualquer status válido pode suceder qualquer
// outro, política permissiva herdada do fluxo do painel.
func (s StatusPedido) Valido() bool {
	switch s {
	case StatusNovo, StatusPreparando, StatusSaiuEntrega,
		StatusProntoRetirada, StatusConcluido, StatusCancelado:
		return true
	}
	return false
}

// Terminal informa se o pedido encerrou seu ciclo.
func (s StatusPedido) Terminal() bool {
	return s == StatusConcluido || s == StatusCancelado
}

// MetodoEntrega indica como o cliente recebe o pedido.
type MetodoEntrega string

const (
	EntregaDelivery MetodoEntrega = "Entrega"
	EntregaRetirada MetodoEntrega = "Retirada"
)

// MetodoPagamento indica como o cliente paga o pedido.
type MetodoPagamento string

const (
	PagamentoPIX           MetodoPagamento = "PIX"
	PagamentoDinheiro      MetodoPagamento = "Dinheiro"
	PagamentoCartaoEntrega MetodoPagamento = "Cartão na Entrega"
)

// Cliente guarda os dados informados no checkout. Os campos de endereço só
// são obrigatórios quando o método de entrega é "Entrega".
type Cliente struct {
	Nome        string `json:"name" gorm:"size:100"`
	Telefone    string `json:"phone" gorm:"size:20"`
	Endereco    string `json:"address" gorm:"size:255"`
	Numero      string `json:"number" gorm:"size:20"`
	Bairro      string `json:"neighborhood" gorm:"size:100"`
	Complemento string `json:"complement,omitempty" gorm:"size:100"`
}

// ItemPedido é o snapshot de um item no momento da compra. O preço fica
// congelado aqui; mudanças posteriores no catálogo não afetam o pedido.
type ItemPedido struct {
	Seq        uint            `json:"-" gorm:"primaryKey;autoIncrement"`
	PedidoID   string          `json:"-" gorm:"index;size:16"`
	ProdutoID  string          `json:"id" gorm:"size:64"`
	Nome       string          `json:"name" gorm:"size:100"`
	Preco      decimal.Decimal `json:"price" gorm:"type:numeric(10,2)"`
	Quantidade int             `json:"quantity"`
}

// Subtotal é preço unitário vezes quantidade, em aritmética decimal exata.
func (i ItemPedido) Subtotal() decimal.Decimal {
	return i.Preco.Mul(decimal.NewFromInt(int64(i.Quantidade)))
}

// Pedido representa uma compra concluída. Depois de criado, apenas o campo
// Status muda; itens, total, cliente e métodos são imutáveis.
type Pedido struct {
	ID              string          `json:"id" gorm:"primaryKey;size:16"`
	Items           []ItemPedido    `json:"items" gorm:"foreignKey:PedidoID"`
	Total           decimal.Decimal `json:"total" gorm:"type:numeric(10,2);not null"`
	Status          StatusPedido    `json:"status" gorm:"type:varchar(30);not null"`
	Cliente         Cliente         `json:"customer" gorm:"embedded;embeddedPrefix:cliente_"`
	MetodoEntrega   MetodoEntrega   `json:"deliveryMethod" gorm:"type:varchar(20)"`
	MetodoPagamento MetodoPagamento `json:"paymentMethod" gorm:"type:varchar(30)"`
	Observacoes     string          `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// DashboardStats resume os pedidos para o painel do lojista.
type DashboardStats struct {
	TotalPedidos     int             `json:"totalOrders"`
	ReceitaTotal     decimal.Decimal `json:"totalRevenue"`
	PedidosPendentes int             `json:"pendingOrders"`
}

// /internal/order/builder.go
package order

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rjdoces/rj-doces/internal/cart"
	"github.com/rjdoces/rj-doces/internal/model"
)

// ErrCarrinhoVazio indica checkout sem nenhuma linha no carrinho.
var ErrCarrinhoVazio = errors.New("carrinho vazio")

const (
	idAlfabeto = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	idTamanho  = 9
)

// NovoID gera o identificador público do pedido: 9 caracteres alfanuméricos
// maiúsculos, o formato exibido ao cliente (#A7X9...). Com 36^9 combinações a
// chance de colisão é desprezível; o store ainda checa duplicidade por defesa.
func NovoID() (string, error) {
	buf := make([]byte, idTamanho)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("gerar id do pedido: %w", err)
	}
	for i, b := range buf {
		buf[i] = idAlfabeto[int(b)%len(idAlfabeto)]
	}
	return string(buf), nil
}

// Build monta um Pedido imutável a partir do snapshot do carrinho e dos dados
// do checkout. Não persiste nada; gravar é responsabilidade do store.
//
// Validações: nome e telefone sempre obrigatórios; endereço, número e bairro
// obrigatórios apenas quando o método é Entrega. O total é congelado aqui com
// o preço de cada linha no momento da compra.
func Build(linhas []cart.Linha, cliente model.Cliente, entrega model.MetodoEntrega, pagamento model.MetodoPagamento, observacoes string) (model.Pedido, error) {
	if len(linhas) == 0 {
		return model.Pedido{}, ErrCarrinhoVazio
	}

	if err := validarCliente(cliente, entrega); err != nil {
		return model.Pedido{}, err
	}

	id, err := NovoID()
	if err != nil {
		return model.Pedido{}, err
	}

	items := make([]model.ItemPedido, 0, len(linhas))
	total := decimal.Zero
	for _, l := range linhas {
		item := model.ItemPedido{
			PedidoID:   id,
			ProdutoID:  l.Produto.ID,
			Nome:       l.Produto.Nome,
			Preco:      l.Produto.Preco,
			Quantidade: l.Quantidade,
		}
		items = append(items, item)
		total = total.Add(item.Subtotal())
	}

	return model.Pedido{
		ID:              id,
		Items:           items,
		Total:           total,
		Status:          model.StatusNovo,
		Cliente:         cliente,
		MetodoEntrega:   entrega,
		MetodoPagamento: pagamento,
		Observacoes:     observacoes,
		CreatedAt:       time.Now(),
	}, nil
}

func validarCliente(cliente model.Cliente, entrega model.MetodoEntrega) error {
	var faltantes []string
	if cliente.Nome == "" {
		faltantes = append(faltantes, "name")
	}
	if cliente.Telefone == "" {
		faltantes = append(faltantes, "phone")
	}
	if entrega == model.EntregaDelivery {
		if cliente.Endereco == "" {
			faltantes = append(faltantes, "address")
		}
		if cliente.Numero == "" {
			faltantes = append(faltantes, "number")
		}
		if cliente.Bairro == "" {
			faltantes = append(faltantes, "neighborhood")
		}
	}
	if len(faltantes) > 0 {
		return &model.ValidationError{Campos: faltantes}
	}
	return nil
}

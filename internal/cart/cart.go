// /internal/cart/cart.go
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/rjdoces/rj-doces/internal/model"
)

// Linha é um item do carrinho: snapshot do produto mais a quantidade.
// Uma linha com quantidade zero nunca existe; ela é removida do carrinho.
type Linha struct {
	Produto    model.Produto `json:"product"`
	Quantidade int           `json:"quantity"`
}

// Subtotal é preço vezes quantidade, em aritmética decimal exata.
func (l Linha) Subtotal() decimal.Decimal {
	return l.Produto.Preco.Mul(decimal.NewFromInt(int64(l.Quantidade)))
}

// Carrinho mantém as linhas em ordem de inserção, no máximo uma por produto.
// Todos os campos são exportados para que o carrinho viaje na sessão via gob.
// As operações são síncronas; cada sessão tem um único mutador.
type Carrinho struct {
	Linhas []Linha
}

func Novo() *Carrinho {
	return &Carrinho{}
}

// Adicionar insere uma linha nova com quantidade 1 ou incrementa a linha
// existente do mesmo produto. O produto é copiado como snapshot; mudanças
// posteriores no catálogo não alteram o carrinho.
func (c *Carrinho) Adicionar(p model.Produto) {
	if i := c.indice(p.ID); i >= 0 {
		c.Linhas[i].Quantidade++
		return
	}
	c.Linhas = append(c.Linhas, Linha{Produto: p, Quantidade: 1})
}

// AtualizarQuantidade aplica um delta à linha do produto. A quantidade nunca
// fica negativa; ao chegar a zero a linha é removida. Produto ausente é no-op.
func (c *Carrinho) AtualizarQuantidade(id string, delta int) {
	i := c.indice(id)
	if i < 0 {
		return
	}
	nova := c.Linhas[i].Quantidade + delta
	if nova <= 0 {
		c.remover(i)
		return
	}
	c.Linhas[i].Quantidade = nova
}

// Remover apaga a linha do produto, se existir.
func (c *Carrinho) Remover(id string) {
	if i := c.indice(id); i >= 0 {
		c.remover(i)
	}
}

// Total soma preço vezes quantidade de todas as linhas em decimal exato,
// sem acumular erro de ponto flutuante na formatação em reais.
func (c *Carrinho) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Linhas {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Quantidade soma as quantidades de todas as linhas (o contador do ícone).
func (c *Carrinho) Quantidade() int {
	total := 0
	for _, l := range c.Linhas {
		total += l.Quantidade
	}
	return total
}

// Limpar esvazia o carrinho. Chamado após o checkout ser confirmado.
func (c *Carrinho) Limpar() {
	c.Linhas = nil
}

func (c *Carrinho) Vazio() bool {
	return len(c.Linhas) == 0
}

func (c *Carrinho) indice(id string) int {
	for i, l := range c.Linhas {
		if l.Produto.ID == id {
			return i
		}
	}
	return -1
}

func (c *Carrinho) remover(i int) {
	c.Linhas = append(c.Linhas[:i], c.Linhas[i+1:]...)
}

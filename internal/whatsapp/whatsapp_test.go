package whatsapp

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rjdoces/rj-doces/internal/model"
)

func pedidoTeste(entrega model.MetodoEntrega) model.Pedido {
	return model.Pedido{
		ID:     "A7X9B2C4D",
		Total:  decimal.RequireFromString("17.00"),
		Status: model.StatusNovo,
		Items: []model.ItemPedido{
			{ProdutoID: "1", Nome: "Coxinha de Frango", Preco: decimal.RequireFromString("6.50"), Quantidade: 2},
			{ProdutoID: "2", Nome: "Brigadeiro Gourmet", Preco: decimal.RequireFromString("4.00"), Quantidade: 1},
		},
		Cliente: model.Cliente{
			Nome:        "Maria",
			Telefone:    "21988887777",
			Endereco:    "Rua das Laranjeiras",
			Numero:      "42",
			Bairro:      "Laranjeiras",
			Complemento: "ap 301",
		},
		MetodoEntrega:   entrega,
		MetodoPagamento: model.PagamentoPIX,
	}
}

func TestFormatMessageRetirada(t *testing.T) {
	msg := FormatMessage(pedidoTeste(model.EntregaRetirada))

	esperados := []string{
		"*NOVO PEDIDO #A7X9B2C4D*",
		"*Cliente:* Maria",
		"*Telefone:* 21988887777",
		"*Retirada no Local*",
		"*ITENS:*",
		"- 2x Coxinha de Frango (R$ 13.00)",
		"- 1x Brigadeiro Gourmet (R$ 4.00)",
		"*Pagamento:* PIX",
		"*TOTAL:* R$ 17.00",
	}
	for _, trecho := range esperados {
		if !strings.Contains(msg, trecho) {
			t.Errorf("Mensagem deveria conter %q.\nMensagem: %s", trecho, msg)
		}
	}

	// Retirada não inclui endereço.
	if strings.Contains(msg, "*Endereço:*") {
		t.Error("Mensagem de retirada não deveria conter endereço")
	}
	if !strings.Contains(msg, "%0A") {
		t.Error("Quebras de linha devem ser percent-encoded (%0A)")
	}
}

func TestFormatMessageEntrega(t *testing.T) {
	msg := FormatMessage(pedidoTeste(model.EntregaDelivery))

	if !strings.Contains(msg, "*Endereço:* Rua das Laranjeiras, 42 - Laranjeiras") {
		t.Errorf("Endereço ausente ou mal formatado.\nMensagem: %s", msg)
	}
	if !strings.Contains(msg, "*Comp:* ap 301") {
		t.Errorf("Complemento ausente.\nMensagem: %s", msg)
	}
	if strings.Contains(msg, "*Retirada no Local*") {
		t.Error("Mensagem de entrega não deveria conter o bloco de retirada")
	}
}

func TestFormatMessageSemObservacoes(t *testing.T) {
	p := pedidoTeste(model.EntregaRetirada)
	p.Observacoes = ""
	if !strings.Contains(FormatMessage(p), "*Observações:* Nenhuma") {
		t.Error("Observações vazias devem sair como 'Nenhuma'")
	}

	p.Observacoes = "sem cebola"
	if !strings.Contains(FormatMessage(p), "*Observações:* sem cebola") {
		t.Error("Observações preenchidas devem aparecer na mensagem")
	}
}

func TestFormatMessageDeterministica(t *testing.T) {
	p := pedidoTeste(model.EntregaDelivery)
	if FormatMessage(p) != FormatMessage(p) {
		t.Error("FormatMessage deve ser determinística")
	}
}

func TestLink(t *testing.T) {
	p := pedidoTeste(model.EntregaRetirada)
	link := Link("5521999999999", p)

	if !strings.HasPrefix(link, "https://wa.me/5521999999999?text=") {
		t.Errorf("Link com prefixo incorreto: %s", link)
	}
	// O total codificado viaja no link; as quebras %0A não são recodificadas.
	if !strings.Contains(link, "17.00") {
		t.Errorf("Link deveria conter o total codificado: %s", link)
	}
	if !strings.Contains(link, "%0A") {
		t.Errorf("Link deveria preservar as quebras %%0A: %s", link)
	}
	if strings.Contains(link, "%250A") {
		t.Errorf("Quebras de linha foram duplamente codificadas: %s", link)
	}
	if strings.Contains(link, " ") {
		t.Errorf("Link não pode conter espaços crus: %s", link)
	}
}

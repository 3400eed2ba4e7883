package order

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rjdoces/rj-doces/internal/cart"
	"github.com/rjdoces/rj-doces/internal/model"
)

func carrinhoTeste() *cart.Carrinho {
	c := cart.Novo()
	coxinha := model.Produto{ID: "1", Nome: "Coxinha de Frango", Preco: decimal.RequireFromString("6.50"), Categoria: model.CategoriaSalgados, Disponivel: true}
	brigadeiro := model.Produto{ID: "2", Nome: "Brigadeiro Gourmet", Preco: decimal.RequireFromString("4.00"), Categoria: model.CategoriaDoces, Disponivel: true}
	c.Adicionar(coxinha)
	c.Adicionar(coxinha)
	c.Adicionar(brigadeiro)
	return c
}

func clienteRetirada() model.Cliente {
	return model.Cliente{Nome: "Maria", Telefone: "21988887777"}
}

func clienteEntrega() model.Cliente {
	return model.Cliente{
		Nome:     "Maria",
		Telefone: "21988887777",
		Endereco: "Rua das Laranjeiras",
		Numero:   "42",
		Bairro:   "Laranjeiras",
	}
}

func TestBuildPedidoValido(t *testing.T) {
	c := carrinhoTeste()
	totalCarrinho := c.Total()

	pedido, err := Build(c.Linhas, clienteEntrega(), model.EntregaDelivery, model.PagamentoPIX, "sem cebola")
	if err != nil {
		t.Fatalf("Erro inesperado: %v", err)
	}

	if !pedido.Total.Equal(totalCarrinho) {
		t.Errorf("Total do pedido (%s) difere do total do carrinho (%s)", pedido.Total, totalCarrinho)
	}
	if pedido.Status != model.StatusNovo {
		t.Errorf("Status inicial incorreto: esperado %q obteve %q", model.StatusNovo, pedido.Status)
	}
	if len(pedido.Items) != 2 {
		t.Errorf("Pedido deveria ter 2 itens, tem %d", len(pedido.Items))
	}
	if pedido.CreatedAt.IsZero() {
		t.Error("CreatedAt não foi preenchido")
	}
	if pedido.Observacoes != "sem cebola" {
		t.Errorf("Observações incorretas: %q", pedido.Observacoes)
	}

	if len(pedido.ID) != 9 {
		t.Errorf("ID deveria ter 9 caracteres, tem %d (%q)", len(pedido.ID), pedido.ID)
	}
	for _, r := range pedido.ID {
		if !strings.ContainsRune(idAlfabeto, r) {
			t.Errorf("ID contém caractere fora do alfabeto: %q", pedido.ID)
		}
	}
}

// O pedido é um snapshot: mutações no carrinho depois do Build não o afetam.
func TestBuildSnapshotIndependente(t *testing.T) {
	c := carrinhoTeste()
	pedido, err := Build(c.Linhas, clienteRetirada(), model.EntregaRetirada, model.PagamentoDinheiro, "")
	if err != nil {
		t.Fatalf("Erro inesperado: %v", err)
	}

	totalAntes := pedido.Total
	itensAntes := len(pedido.Items)

	c.AtualizarQuantidade("1", 10)
	c.Remover("2")
	c.Limpar()

	if !pedido.Total.Equal(totalAntes) || len(pedido.Items) != itensAntes {
		t.Error("Mutação do carrinho alterou um pedido já construído")
	}
	if pedido.Items[0].Quantidade != 2 {
		t.Errorf("Quantidade do snapshot alterada: %d", pedido.Items[0].Quantidade)
	}
}

func TestBuildEntregaSemEndereco(t *testing.T) {
	c := carrinhoTeste()
	cliente := clienteRetirada() // sem endereço

	_, err := Build(c.Linhas, cliente, model.EntregaDelivery, model.PagamentoPIX, "")

	var valErr *model.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("Esperava ValidationError, obteve %v", err)
	}
	for _, campo := range []string{"address", "number", "neighborhood"} {
		if !slices.Contains(valErr.Campos, campo) {
			t.Errorf("ValidationError deveria citar %q, campos: %v", campo, valErr.Campos)
		}
	}

	// O mesmo cliente passa quando o método é Retirada.
	if _, err := Build(c.Linhas, cliente, model.EntregaRetirada, model.PagamentoPIX, ""); err != nil {
		t.Errorf("Retirada não exige endereço, obteve erro: %v", err)
	}
}

func TestBuildSemNomeOuTelefone(t *testing.T) {
	c := carrinhoTeste()

	_, err := Build(c.Linhas, model.Cliente{}, model.EntregaRetirada, model.PagamentoPIX, "")

	var valErr *model.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("Esperava ValidationError, obteve %v", err)
	}
	if !slices.Contains(valErr.Campos, "name") || !slices.Contains(valErr.Campos, "phone") {
		t.Errorf("Campos obrigatórios ausentes não citados: %v", valErr.Campos)
	}
}

// Carrinho vazio falha antes de qualquer validação de cliente.
func TestBuildCarrinhoVazio(t *testing.T) {
	_, err := Build(nil, model.Cliente{}, model.EntregaDelivery, model.PagamentoPIX, "")
	if !errors.Is(err, ErrCarrinhoVazio) {
		t.Fatalf("Esperava ErrCarrinhoVazio, obteve %v", err)
	}
}

func TestNovoIDFormato(t *testing.T) {
	vistos := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := NovoID()
		if err != nil {
			t.Fatalf("Erro inesperado: %v", err)
		}
		if len(id) != idTamanho {
			t.Fatalf("Tamanho incorreto: %q", id)
		}
		if vistos[id] {
			t.Fatalf("ID repetido em 100 gerações: %q", id)
		}
		vistos[id] = true
	}
}

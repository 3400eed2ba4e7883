// /internal/handler/checkout_handler.go
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/rjdoces/rj-doces/internal/middleware"
	"github.com/rjdoces/rj-doces/internal/model"
	"github.com/rjdoces/rj-doces/internal/order"
	"github.com/rjdoces/rj-doces/internal/store"
	"github.com/rjdoces/rj-doces/internal/whatsapp"
)

// CheckoutHandler conclui a compra: monta o pedido a partir do carrinho da
// sessão, grava no store e devolve o link do WhatsApp para confirmação.
type CheckoutHandler struct {
	Store        *sessions.CookieStore
	Pedidos      store.OrderStore
	TelefoneLoja string
}

type checkoutRequest struct {
	Cliente         model.Cliente         `json:"customer"`
	MetodoEntrega   model.MetodoEntrega   `json:"deliveryMethod"`
	MetodoPagamento model.MetodoPagamento `json:"paymentMethod"`
	Observacoes     string                `json:"notes"`
}

// Checkout processa a submissão do pedido. Validação falha com 400 citando
// os campos; carrinho vazio falha com 400; sucesso limpa o carrinho e
// devolve o pedido criado com o link de confirmação.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	ok := false
	defer func() { middleware.RecordPedidoOperation("checkout", ok) }()

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados do checkout inválidos."})
		return
	}
	// O formulário de checkout abre com Entrega e PIX pré-selecionados.
	if req.MetodoEntrega == "" {
		req.MetodoEntrega = model.EntregaDelivery
	}
	if req.MetodoPagamento == "" {
		req.MetodoPagamento = model.PagamentoPIX
	}

	session, carrinho := carrinhoDaSessao(h.Store, c)

	pedido, err := order.Build(carrinho.Linhas, req.Cliente, req.MetodoEntrega, req.MetodoPagamento, req.Observacoes)
	if err != nil {
		var valErr *model.ValidationError
		switch {
		case errors.Is(err, order.ErrCarrinhoVazio):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Seu carrinho está vazio."})
		case errors.As(err, &valErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Preencha os campos obrigatórios.",
				"fields":  valErr.Campos,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao montar o pedido."})
		}
		return
	}

	pedido, err = h.criarComNovoIDSePreciso(pedido)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Não foi possível registrar seu pedido."})
		return
	}

	// O carrinho só é limpo depois que o pedido está confirmado.
	carrinho.Limpar()
	if err := salvarCarrinho(session, carrinho, c); err != nil {
		slog.Warn("pedido criado mas o carrinho não foi limpo na sessão", "pedido", pedido.ID, "erro", err)
	}

	ok = true
	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"order":        pedido,
		"whatsappLink": whatsapp.Link(h.TelefoneLoja, pedido),
	})
}

// criarComNovoIDSePreciso grava o pedido e, no caso improvável de colisão de
// id, gera outro e tenta mais uma vez em vez de devolver o erro ao cliente.
func (h *CheckoutHandler) criarComNovoIDSePreciso(pedido model.Pedido) (model.Pedido, error) {
	err := h.Pedidos.CriarPedido(pedido)
	if err == nil {
		return pedido, nil
	}
	if !errors.Is(err, store.ErrIDDuplicado) {
		return model.Pedido{}, err
	}

	slog.Warn("colisão de id de pedido, gerando novo id", "pedido", pedido.ID)
	novoID, err := order.NovoID()
	if err != nil {
		return model.Pedido{}, err
	}
	pedido.ID = novoID
	for i := range pedido.Items {
		pedido.Items[i].PedidoID = novoID
	}
	if err := h.Pedidos.CriarPedido(pedido); err != nil {
		return model.Pedido{}, err
	}
	return pedido, nil
}

// /internal/handler/cart_handler.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/rjdoces/rj-doces/internal/model"
	"github.com/rjdoces/rj-doces/internal/store"
)

// CartHandler agrupa os handlers do carrinho. O carrinho vive na sessão do
// navegador; cada sessão tem seu próprio carrinho e um único mutador.
type CartHandler struct {
	Store    *sessions.CookieStore
	Catalogo store.CatalogStore
}

// AddToCart adiciona um item ao carrinho e retorna JSON com a nova contagem.
func (h *CartHandler) AddToCart(c *gin.Context) {
	id := c.Param("id")

	produto, err := h.produtoDisponivel(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Produto não encontrado ou indisponível."})
		return
	}

	session, carrinho := carrinhoDaSessao(h.Store, c)
	carrinho.Adicionar(produto)

	if err := salvarCarrinho(session, carrinho, c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar o carrinho."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Item adicionado com sucesso!",
		"newCartCount": carrinho.Quantidade(),
	})
}

// UpdateQuantidade aplica um delta à quantidade de um item. Quantidade
// zerada remove a linha; item ausente é no-op.
func (h *CartHandler) UpdateQuantidade(c *gin.Context) {
	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Delta inválido."})
		return
	}

	session, carrinho := carrinhoDaSessao(h.Store, c)
	carrinho.AtualizarQuantidade(c.Param("id"), req.Delta)

	if err := salvarCarrinho(session, carrinho, c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao atualizar o carrinho."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Quantidade atualizada.",
		"newCartCount": carrinho.Quantidade(),
	})
}

// RemoveFromCart remove a linha do item, se existir.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	session, carrinho := carrinhoDaSessao(h.Store, c)
	carrinho.Remover(c.Param("id"))

	if err := salvarCarrinho(session, carrinho, c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao atualizar o carrinho."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Item removido.",
		"newCartCount": carrinho.Quantidade(),
	})
}

// ClearCart esvazia o carrinho.
func (h *CartHandler) ClearCart(c *gin.Context) {
	session, carrinho := carrinhoDaSessao(h.Store, c)
	carrinho.Limpar()

	if err := salvarCarrinho(session, carrinho, c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao limpar o carrinho."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Carrinho esvaziado.", "newCartCount": 0})
}

// ShowCart devolve o conteúdo do carrinho com o total exato em duas casas.
func (h *CartHandler) ShowCart(c *gin.Context) {
	_, carrinho := carrinhoDaSessao(h.Store, c)

	c.JSON(http.StatusOK, gin.H{
		"items": carrinho.Linhas,
		"total": carrinho.Total().StringFixed(2),
		"count": carrinho.Quantidade(),
	})
}

func (h *CartHandler) produtoDisponivel(id string) (model.Produto, error) {
	produtos, err := h.Catalogo.Produtos()
	if err != nil {
		return model.Produto{}, err
	}
	for _, p := range produtos {
		if p.ID == id && p.Disponivel {
			return p, nil
		}
	}
	return model.Produto{}, store.ErrNaoEncontrado
}

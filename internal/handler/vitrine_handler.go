// /internal/handler/vitrine_handler.go
package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rjdoces/rj-doces/internal/model"
	"github.com/rjdoces/rj-doces/internal/store"
)

// VitrineHandler serve o catálogo para a vitrine da loja.
type VitrineHandler struct {
	Catalogo store.CatalogStore
}

// ShowProdutos lista o catálogo, com filtro opcional por categoria e busca
// por nome ou descrição (case-insensitive).
func (h *VitrineHandler) ShowProdutos(c *gin.Context) {
	produtos, err := h.Catalogo.Produtos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar produtos."})
		return
	}

	categoria := c.Query("categoria")
	busca := strings.ToLower(c.Query("busca"))

	filtrados := make([]model.Produto, 0, len(produtos))
	for _, p := range produtos {
		if categoria != "" && categoria != "Todos" && string(p.Categoria) != categoria {
			continue
		}
		if busca != "" &&
			!strings.Contains(strings.ToLower(p.Nome), busca) &&
			!strings.Contains(strings.ToLower(p.Descricao), busca) {
			continue
		}
		filtrados = append(filtrados, p)
	}

	c.JSON(http.StatusOK, filtrados)
}

// /internal/handler/admin_handler.go
package handler

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rjdoces/rj-doces/internal/middleware"
	"github.com/rjdoces/rj-doces/internal/model"
	"github.com/rjdoces/rj-doces/internal/store"
)

// AdminHandler agrupa o painel do lojista: gestão de produtos e pedidos.
type AdminHandler struct {
	Catalogo  store.CatalogStore
	Pedidos   store.OrderStore
	UploadDir string
}

// AdminToken protege as rotas do painel com um token compartilhado, o
// equivalente do acesso por hash (#admin) do painel web. Não é
// autenticação de verdade; autenticação real está fora do escopo da loja.
func AdminToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		recebido := c.GetHeader("X-Admin-Token")
		if recebido == "" {
			recebido = c.Query("token")
		}
		if subtle.ConstantTimeCompare([]byte(recebido), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Acesso restrito ao lojista."})
			return
		}
		c.Next()
	}
}

// ShowPedidos lista todos os pedidos, do mais recente para o mais antigo.
func (h *AdminHandler) ShowPedidos(c *gin.Context) {
	pedidos, err := h.Pedidos.Pedidos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar pedidos."})
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

// UpdateStatus troca o status de um pedido. Qualquer status conhecido é
// aceito; não há grafo de transições imposto.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	ok := false
	defer func() { middleware.RecordPedidoOperation("update_status", ok) }()

	var req struct {
		Status model.StatusPedido `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status não informado."})
		return
	}

	err := h.Pedidos.AtualizarStatus(c.Param("id"), req.Status)
	var valErr *model.ValidationError
	switch {
	case err == nil:
		ok = true
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status atualizado.", "orderId": c.Param("id")})
	case errors.Is(err, store.ErrNaoEncontrado):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado."})
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status desconhecido.", "fields": valErr.Campos})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar o status."})
	}
}

// Dashboard resume os pedidos para o painel: total, receita (pedidos não
// cancelados) e pendentes (fora dos status terminais).
func (h *AdminHandler) Dashboard(c *gin.Context) {
	pedidos, err := h.Pedidos.Pedidos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar pedidos."})
		return
	}

	stats := model.DashboardStats{TotalPedidos: len(pedidos), ReceitaTotal: decimal.Zero}
	for _, p := range pedidos {
		if p.Status != model.StatusCancelado {
			stats.ReceitaTotal = stats.ReceitaTotal.Add(p.Total)
		}
		if !p.Status.Terminal() {
			stats.PedidosPendentes++
		}
	}

	c.JSON(http.StatusOK, stats)
}

// SaveProduto faz upsert de um produto. Aceita JSON (com as variações de
// forma normalizadas no model) ou formulário multipart com imagem opcional,
// o fluxo de upload do painel.
func (h *AdminHandler) SaveProduto(c *gin.Context) {
	var produto model.Produto
	var err error

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		produto, err = h.produtoDoFormulario(c)
	} else {
		err = c.ShouldBindJSON(&produto)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados do produto inválidos.", "details": err.Error()})
		return
	}

	if produto.ID == "" {
		produto.ID = uuid.New().String()
	}

	if err := h.Catalogo.SalvarProduto(produto); err != nil {
		var valErr *model.ValidationError
		if errors.As(err, &valErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Preço inválido.", "fields": valErr.Campos})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar o produto."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": produto})
}

// DeleteProduto remove um produto; id ausente segue sendo sucesso (no-op).
func (h *AdminHandler) DeleteProduto(c *gin.Context) {
	if err := h.Catalogo.RemoverProduto(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir o produto."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Produto removido."})
}

func (h *AdminHandler) produtoDoFormulario(c *gin.Context) (model.Produto, error) {
	preco, err := decimal.NewFromString(c.PostForm("preco"))
	if err != nil {
		return model.Produto{}, fmt.Errorf("preço inválido: %w", err)
	}

	produto := model.Produto{
		ID:         c.PostForm("id"),
		Nome:       c.PostForm("nome"),
		Descricao:  c.PostForm("descricao"),
		Preco:      preco,
		Categoria:  model.Categoria(c.PostForm("categoria")),
		ImagemURL:  c.PostForm("imagemUrl"),
		Disponivel: c.PostForm("disponivel") == "true",
	}

	// Imagem é opcional; quando enviada, é salva com nome aleatório.
	file, err := c.FormFile("imagem")
	if err == nil {
		extensao := filepath.Ext(file.Filename)
		novoNomeArquivo := uuid.New().String() + extensao
		caminhoDestino := filepath.Join(h.UploadDir, novoNomeArquivo)
		if err := c.SaveUploadedFile(file, caminhoDestino); err != nil {
			return model.Produto{}, fmt.Errorf("salvar imagem: %w", err)
		}
		produto.ImagemURL = "/uploads/" + novoNomeArquivo
	}

	return produto, nil
}
